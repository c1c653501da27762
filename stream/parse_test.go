package stream

import (
	"io"
	"strings"
	"testing"
)

func TestParseLine_BlankLines(t *testing.T) {
	if ev := ParseLine(""); ev != nil {
		t.Errorf("expected nil for empty line, got %T", ev)
	}
	if ev := ParseLine("   "); ev != nil {
		t.Errorf("expected nil for whitespace line, got %T", ev)
	}
	if ev := ParseLine("\t"); ev != nil {
		t.Errorf("expected nil for tab line, got %T", ev)
	}
}

func TestParseLine_MalformedJSON(t *testing.T) {
	ev := ParseLine("not json")
	te, ok := ev.(TextEvent)
	if !ok {
		t.Fatalf("expected TextEvent, got %T", ev)
	}
	if te.Text != "not json" {
		t.Errorf("expected raw line as text, got %q", te.Text)
	}
}

func TestParseLine_ContentAliases(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"content field", `{"type":"content","content":"hello"}`, "hello"},
		{"text type with text field", `{"type":"text","text":"hi"}`, "hi"},
		{"assistant with content", `{"type":"assistant","content":"yo"}`, "yo"},
		{"content wins over text", `{"type":"content","content":"a","text":"b"}`, "a"},
		{"text fallback", `{"type":"content","text":"b"}`, "b"},
		{"neither field", `{"type":"content"}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := ParseLine(tc.line)
			te, ok := ev.(TextEvent)
			if !ok {
				t.Fatalf("expected TextEvent, got %T", ev)
			}
			if te.Text != tc.want {
				t.Errorf("expected %q, got %q", tc.want, te.Text)
			}
		})
	}
}

func TestParseLine_Thinking(t *testing.T) {
	ev := ParseLine(`{"type":"thinking","thinking":"hmm"}`)
	th, ok := ev.(ThinkingEvent)
	if !ok {
		t.Fatalf("expected ThinkingEvent, got %T", ev)
	}
	if th.Thinking != "hmm" {
		t.Errorf("expected thinking 'hmm', got %q", th.Thinking)
	}

	// content takes precedence over the thinking field
	ev = ParseLine(`{"type":"thinking","content":"a","thinking":"b"}`)
	if th := ev.(ThinkingEvent); th.Thinking != "a" {
		t.Errorf("expected content to win, got %q", th.Thinking)
	}
}

func TestParseLine_ToolUseFieldFallbacks(t *testing.T) {
	ev := ParseLine(`{"type":"tool_use","name":"Read","input":{"path":"a.go"}}`)
	tu, ok := ev.(ToolUseEvent)
	if !ok {
		t.Fatalf("expected ToolUseEvent, got %T", ev)
	}
	if tu.Name != "Read" {
		t.Errorf("expected name 'Read', got %q", tu.Name)
	}
	if tu.Input["path"] != "a.go" {
		t.Errorf("unexpected input: %v", tu.Input)
	}

	ev = ParseLine(`{"type":"tool_call","tool_name":"Bash","tool_input":{"command":"ls"}}`)
	tu = ev.(ToolUseEvent)
	if tu.Name != "Bash" || tu.Input["command"] != "ls" {
		t.Errorf("tool_name/tool_input fallback failed: %+v", tu)
	}

	ev = ParseLine(`{"type":"tool_use"}`)
	tu = ev.(ToolUseEvent)
	if tu.Name != "unknown" {
		t.Errorf("expected name 'unknown', got %q", tu.Name)
	}
	if tu.Input == nil {
		t.Error("expected non-nil input map")
	}
}

func TestParseLine_ToolResultNonStringContent(t *testing.T) {
	ev := ParseLine(`{"type":"tool_result","content":{"nested":true}}`)
	tr, ok := ev.(ToolResultEvent)
	if !ok {
		t.Fatalf("expected ToolResultEvent, got %T", ev)
	}
	if tr.Content != "" {
		t.Errorf("expected empty content for structured payload, got %q", tr.Content)
	}
}

func TestParseLine_Todos(t *testing.T) {
	ev := ParseLine(`{"type":"todos","todos":[{"id":"t1","content":"step","status":"pending","activeForm":"stepping"}]}`)
	td, ok := ev.(TodoEvent)
	if !ok {
		t.Fatalf("expected TodoEvent, got %T", ev)
	}
	if len(td.Todos) != 1 || td.Todos[0].ID != "t1" {
		t.Errorf("unexpected todos: %+v", td.Todos)
	}

	ev = ParseLine(`{"type":"todo","content":"do thing","status":"in_progress"}`)
	td = ev.(TodoEvent)
	if td.Todos != nil {
		t.Errorf("expected nil todo list for bare todo, got %+v", td.Todos)
	}
	if td.Content != "do thing" || td.Status != TodoStatusInProgress {
		t.Errorf("unexpected bare todo: %+v", td)
	}
}

func TestParseLine_Result(t *testing.T) {
	ev := ParseLine(`{"type":"result","result":"done"}`)
	re, ok := ev.(ResultEvent)
	if !ok {
		t.Fatalf("expected ResultEvent, got %T", ev)
	}
	if re.Text != "done" {
		t.Errorf("expected result text 'done', got %q", re.Text)
	}

	// content fallback when result field is absent
	ev = ParseLine(`{"type":"message","content":"fin"}`)
	if re := ev.(ResultEvent); re.Text != "fin" {
		t.Errorf("expected content fallback 'fin', got %q", re.Text)
	}
}

func TestParseLine_ResultUsage(t *testing.T) {
	ev := ParseLine(`{"type":"result","result":"ok","usage":{"input_tokens":10,"output_tokens":5},"total_cost_usd":0.02}`)
	re := ev.(ResultEvent)
	if re.Usage == nil {
		t.Fatal("expected usage to be captured")
	}
	if re.Usage.InputTokens != 10 || re.Usage.OutputTokens != 5 {
		t.Errorf("unexpected usage: %+v", re.Usage)
	}
	if re.Usage.CostUSD != 0.02 {
		t.Errorf("expected cost 0.02, got %v", re.Usage.CostUSD)
	}
}

func TestParseLine_UnknownType(t *testing.T) {
	ev := ParseLine(`{"type":"future_event","content":"x"}`)
	ue, ok := ev.(UnknownEvent)
	if !ok {
		t.Fatalf("expected UnknownEvent, got %T", ev)
	}
	if ue.RawType != "future_event" || !ue.HasText || ue.Content != "x" {
		t.Errorf("unexpected unknown event: %+v", ue)
	}

	ev = ParseLine(`{"type":"future_event","payload":42}`)
	ue = ev.(UnknownEvent)
	if ue.HasText {
		t.Error("expected HasText=false when content is absent")
	}
}

func TestDecoder(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"content","content":"a"}`,
		``,
		`   `,
		`not json`,
		`{"type":"result","result":"a"}`,
	}, "\n")

	dec := NewDecoder(strings.NewReader(input))

	var events []Event
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		events = append(events, ev)
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events (blanks skipped), got %d", len(events))
	}
	if _, ok := events[0].(TextEvent); !ok {
		t.Errorf("expected TextEvent first, got %T", events[0])
	}
	if te, ok := events[1].(TextEvent); !ok || te.Text != "not json" {
		t.Errorf("expected raw-text fallback, got %+v", events[1])
	}
	if _, ok := events[2].(ResultEvent); !ok {
		t.Errorf("expected ResultEvent last, got %T", events[2])
	}
}
