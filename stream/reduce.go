package stream

import (
	"fmt"
	"io"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// subAgentTools is the allow-list of orchestration tools that are mirrored
// into the sub-agent action log.
var subAgentTools = map[string]bool{
	"Task":    true,
	"Explore": true,
	"Plan":    true,
}

// maxSubAgentDescription caps descriptions derived from a tool's prompt.
const maxSubAgentDescription = 100

// State accumulates stream events into an in-progress response. A fresh State
// is created per response cycle, fed events in wire order, and discarded after
// the terminal result event. It is owned by a single goroutine; no
// synchronization is provided or needed.
type State struct {
	Content         string
	Thinking        string
	Todos           []TodoItem
	ToolCalls       []ToolCall
	SubAgentActions []SubAgentAction
	Usage           *Usage
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{}
}

// Apply folds one event into the state. It never fails: unrecognized or
// malformed events degrade to a best-effort content append or a no-op.
func (s *State) Apply(event Event) {
	switch ev := event.(type) {
	case TextEvent:
		s.Content += ev.Text

	case ThinkingEvent:
		s.Thinking += ev.Thinking

	case ToolUseEvent:
		s.applyToolUse(ev)

	case ToolResultEvent:
		s.applyToolResult(ev)

	case TodoEvent:
		s.applyTodo(ev)

	case ResultEvent:
		// The terminal event often repeats content already streamed as
		// chunks. An exact-substring check is the only dedup; partial
		// overlaps are not detected.
		if ev.Text != "" && !strings.Contains(s.Content, ev.Text) {
			s.Content += ev.Text
		}
		if ev.Usage != nil {
			s.Usage = ev.Usage
		}

	case UnknownEvent:
		if ev.HasText {
			s.Content += ev.Content
		}
	}
}

func (s *State) applyToolUse(ev ToolUseEvent) {
	call := ToolCall{
		ID:         newToolCallID(),
		Name:       ev.Name,
		Parameters: ev.Input,
		Status:     ToolCallStatusRunning,
	}
	s.ToolCalls = append(s.ToolCalls, call)

	if subAgentTools[ev.Name] {
		s.SubAgentActions = append(s.SubAgentActions, SubAgentAction{
			ID:          call.ID,
			Type:        ev.Name,
			Description: subAgentDescription(ev),
			Status:      ToolCallStatusRunning,
		})
	}
}

func (s *State) applyToolResult(ev ToolResultEvent) {
	// Results are not keyed by id on the wire; they complete the most
	// recently started call. A result with no preceding call is dropped.
	if len(s.ToolCalls) == 0 {
		return
	}
	last := &s.ToolCalls[len(s.ToolCalls)-1]
	last.Status = ToolCallStatusCompleted
	last.Result = ev.Content

	// The sub-agent list is not index-aligned with ToolCalls; match by id.
	for i := range s.SubAgentActions {
		if s.SubAgentActions[i].ID == last.ID {
			s.SubAgentActions[i].Status = ToolCallStatusCompleted
			s.SubAgentActions[i].Result = ev.Content
			break
		}
	}
}

func (s *State) applyTodo(ev TodoEvent) {
	if ev.Todos != nil {
		// Full list: replace wholesale, filling in missing ids.
		now := time.Now().UnixMilli()
		todos := make([]TodoItem, len(ev.Todos))
		for i, todo := range ev.Todos {
			if todo.ID == "" {
				todo.ID = fmt.Sprintf("todo-%d-%d", now, i)
			}
			if todo.Status == "" {
				todo.Status = TodoStatusPending
			}
			todos[i] = todo
		}
		s.Todos = todos
		return
	}

	if ev.Content == "" {
		return
	}

	// Single bare todo: append.
	status := ev.Status
	if status == "" {
		status = TodoStatusPending
	}
	activeForm := ev.ActiveForm
	if activeForm == "" {
		activeForm = ev.Content
	}
	s.Todos = append(s.Todos, TodoItem{
		ID:         fmt.Sprintf("todo-%d-%d", time.Now().UnixMilli(), len(s.Todos)),
		Content:    ev.Content,
		Status:     status,
		ActiveForm: activeForm,
	})
}

// subAgentDescription derives a human-readable description for a sub-agent
// action: the tool's description parameter, else the head of its prompt, else
// the tool name.
func subAgentDescription(ev ToolUseEvent) string {
	if desc, ok := ev.Input["description"].(string); ok && desc != "" {
		return desc
	}
	if prompt, ok := ev.Input["prompt"].(string); ok && prompt != "" {
		if len(prompt) > maxSubAgentDescription {
			return prompt[:maxSubAgentDescription]
		}
		return prompt
	}
	return ev.Name
}

func newToolCallID() string {
	return "tool-" + gonanoid.Must(12)
}

// Response is the final projection of an accumulated stream, consumed by
// transcript rendering.
type Response struct {
	Content         string           `json:"content"`
	Thinking        string           `json:"thinking,omitempty"`
	Todos           []TodoItem       `json:"todos"`
	SubAgentActions []SubAgentAction `json:"subAgentActions"`
	ToolCalls       []ToolCall       `json:"toolCalls"`
	Usage           *Usage           `json:"usage,omitempty"`
}

// Response projects the accumulated state. Slices are never nil so the JSON
// encoding is always an array.
func (s *State) Response() *Response {
	resp := &Response{
		Content:         s.Content,
		Thinking:        s.Thinking,
		Todos:           s.Todos,
		SubAgentActions: s.SubAgentActions,
		ToolCalls:       s.ToolCalls,
		Usage:           s.Usage,
	}
	if resp.Todos == nil {
		resp.Todos = []TodoItem{}
	}
	if resp.SubAgentActions == nil {
		resp.SubAgentActions = []SubAgentAction{}
	}
	if resp.ToolCalls == nil {
		resp.ToolCalls = []ToolCall{}
	}
	return resp
}

// Parse folds a complete NDJSON stream, already buffered as a string, into a
// Response.
func Parse(text string) *Response {
	state := NewState()
	for _, line := range strings.Split(text, "\n") {
		event := ParseLine(line)
		if event == nil {
			continue
		}
		state.Apply(event)
	}
	return state.Response()
}

// Collect reads stream events from r until EOF and returns the accumulated
// Response. Unlike Parse it does not buffer the whole stream in memory.
func Collect(r io.Reader) (*Response, error) {
	state := NewState()
	dec := NewDecoder(r)
	for {
		event, err := dec.Next()
		if err == io.EOF {
			return state.Response(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("read stream: %w", err)
		}
		state.Apply(event)
	}
}
