package stream

// EventType discriminates between stream event kinds as they appear on the
// wire. Several kinds have aliases because the CLI has emitted both spellings
// across versions (content/text, tool_use/tool_call, todo/todos,
// result/message).
type EventType string

const (
	EventTypeContent    EventType = "content"
	EventTypeText       EventType = "text"
	EventTypeAssistant  EventType = "assistant"
	EventTypeThinking   EventType = "thinking"
	EventTypeToolUse    EventType = "tool_use"
	EventTypeToolCall   EventType = "tool_call"
	EventTypeToolResult EventType = "tool_result"
	EventTypeTodo       EventType = "todo"
	EventTypeTodos      EventType = "todos"
	EventTypeResult     EventType = "result"
	EventTypeMessage    EventType = "message"
)

// Event is the interface for all decoded stream events. Alternative wire
// field names are normalized at parse time, so each concrete event carries a
// single canonical payload.
type Event interface {
	Type() EventType
}

// TextEvent carries a chunk of main response text.
// Covers the content, text, and assistant wire types.
type TextEvent struct {
	Text string
}

// Type returns the event type.
func (e TextEvent) Type() EventType { return EventTypeText }

// ThinkingEvent carries a chunk of the reasoning trace.
type ThinkingEvent struct {
	Thinking string
}

// Type returns the event type.
func (e ThinkingEvent) Type() EventType { return EventTypeThinking }

// ToolUseEvent signals the start of a tool invocation.
// Covers the tool_use and tool_call wire types.
type ToolUseEvent struct {
	Name  string
	Input map[string]interface{}
}

// Type returns the event type.
func (e ToolUseEvent) Type() EventType { return EventTypeToolUse }

// ToolResultEvent carries the outcome of the most recent tool invocation.
// The wire format does not reference tool calls by id; results apply to the
// last started call.
type ToolResultEvent struct {
	Content string
}

// Type returns the event type.
func (e ToolResultEvent) Type() EventType { return EventTypeToolResult }

// TodoEvent updates the todo list. When Todos is non-nil the list is replaced
// wholesale; otherwise Content describes a single item to append.
type TodoEvent struct {
	Todos      []TodoItem
	Content    string
	Status     TodoStatus
	ActiveForm string
}

// Type returns the event type.
func (e TodoEvent) Type() EventType { return EventTypeTodo }

// ResultEvent is the terminal event of a response cycle. Text holds the final
// result string (which may duplicate content already streamed as chunks).
// Usage metrics are present when the CLI reports them.
type ResultEvent struct {
	Text  string
	Usage *Usage
}

// Type returns the event type.
func (e ResultEvent) Type() EventType { return EventTypeResult }

// UnknownEvent preserves events with an unrecognized type. Content is set
// when the wire payload carried a content string, in which case the reducer
// appends it to the main response text.
type UnknownEvent struct {
	RawType string
	Content string
	HasText bool
}

// Type returns the wire type verbatim.
func (e UnknownEvent) Type() EventType { return EventType(e.RawType) }

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusCompleted  TodoStatus = "completed"
)

// TodoItem is a task-tracking entry surfaced by the assistant.
type TodoItem struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Status     TodoStatus `json:"status"`
	ActiveForm string     `json:"activeForm"`
}

// ToolCallStatus is the lifecycle state of a tool call.
type ToolCallStatus string

const (
	ToolCallStatusRunning   ToolCallStatus = "running"
	ToolCallStatusCompleted ToolCallStatus = "completed"
)

// ToolCall records the assistant invoking an external capability.
type ToolCall struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters"`
	Status     ToolCallStatus         `json:"status"`
	Result     string                 `json:"result,omitempty"`
}

// SubAgentAction is the orchestration-tool subset of tool calls (Task,
// Explore, Plan), tracked in a parallel list keyed by the originating tool
// call's id.
type SubAgentAction struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Status      ToolCallStatus `json:"status"`
	Result      string         `json:"result,omitempty"`
}

// Usage tracks token consumption reported by a terminal result event.
type Usage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd,omitempty"`
}
