package stream

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// rawEvent is the loose wire shape of one NDJSON line. Field names vary by
// event type and CLI version; normalization to a concrete Event happens here,
// once, rather than in the reducer.
type rawEvent struct {
	Type         string                 `json:"type"`
	Content      json.RawMessage        `json:"content"`
	Text         string                 `json:"text"`
	Thinking     string                 `json:"thinking"`
	Name         string                 `json:"name"`
	ToolName     string                 `json:"tool_name"`
	Input        map[string]interface{} `json:"input"`
	ToolInput    map[string]interface{} `json:"tool_input"`
	Todos        []TodoItem             `json:"todos"`
	Status       string                 `json:"status"`
	ActiveForm   string                 `json:"activeForm"`
	Result       json.RawMessage        `json:"result"`
	Usage        *Usage                 `json:"usage"`
	TotalCostUSD float64                `json:"total_cost_usd"`
}

// contentString returns the content field as a string, if it is one.
// The CLI occasionally emits structured content; non-string payloads are
// treated as absent.
func (r *rawEvent) contentString() (string, bool) {
	return rawString(r.Content)
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// ParseLine decodes one line of CLI output into an Event.
//
// Blank and whitespace-only lines return nil. A non-empty line that is not a
// JSON object degrades to a TextEvent carrying the raw line — upstream CLI
// output is not guaranteed to be clean JSON line-by-line, and a garbled
// transcript beats a dropped one for live rendering.
func ParseLine(line string) Event {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var raw rawEvent
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return TextEvent{Text: line}
	}

	content, hasContent := raw.contentString()

	switch EventType(raw.Type) {
	case EventTypeContent, EventTypeText, EventTypeAssistant:
		text := content
		if !hasContent {
			text = raw.Text
		}
		return TextEvent{Text: text}

	case EventTypeThinking:
		thinking := content
		if !hasContent {
			thinking = raw.Thinking
		}
		return ThinkingEvent{Thinking: thinking}

	case EventTypeToolUse, EventTypeToolCall:
		name := raw.Name
		if name == "" {
			name = raw.ToolName
		}
		if name == "" {
			name = "unknown"
		}
		input := raw.Input
		if input == nil {
			input = raw.ToolInput
		}
		if input == nil {
			input = map[string]interface{}{}
		}
		return ToolUseEvent{Name: name, Input: input}

	case EventTypeToolResult:
		return ToolResultEvent{Content: content}

	case EventTypeTodo, EventTypeTodos:
		return TodoEvent{
			Todos:      raw.Todos,
			Content:    content,
			Status:     TodoStatus(raw.Status),
			ActiveForm: raw.ActiveForm,
		}

	case EventTypeResult, EventTypeMessage:
		text, ok := rawString(raw.Result)
		if !ok {
			text = content
		}
		usage := raw.Usage
		if usage == nil && raw.TotalCostUSD > 0 {
			usage = &Usage{}
		}
		if usage != nil && raw.TotalCostUSD > 0 {
			usage.CostUSD = raw.TotalCostUSD
		}
		return ResultEvent{Text: text, Usage: usage}

	default:
		slog.Debug("unrecognized stream event type", "type", raw.Type)
		return UnknownEvent{RawType: raw.Type, Content: content, HasText: hasContent}
	}
}

// Decoder reads NDJSON stream events from an io.Reader.
type Decoder struct {
	scanner *bufio.Scanner
}

// NewDecoder creates a Decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 10*1024*1024) // 10MB max line
	return &Decoder{scanner: scanner}
}

// Next returns the next Event, skipping blank lines. Returns io.EOF when the
// stream ends.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		event := ParseLine(d.scanner.Text())
		if event == nil {
			continue
		}
		return event, nil
	}

	if err := d.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
