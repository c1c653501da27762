// Package stream decodes the newline-delimited JSON emitted by the Claude
// CLI's stream-json output mode and folds it into an accumulated response:
// main text, reasoning trace, todo list, tool-call log, and the sub-agent
// subset of tool calls.
//
// The wire format is loose — field names vary by event type and CLI version
// (content vs text, input vs tool_input) — so ParseLine normalizes every line
// into one concrete Event kind up front, and the State reducer dispatches on
// the concrete type. Parsing never fails: blank lines are skipped, and lines
// that are not valid JSON degrade to plain text events. This is deliberate;
// the output feeds a live chat transcript, where a best-effort rendering of a
// garbled line is more useful than an error.
//
// Typical use for an already-buffered stream:
//
//	resp := stream.Parse(output)
//
// or incrementally from a subprocess pipe:
//
//	state := stream.NewState()
//	dec := stream.NewDecoder(stdout)
//	for {
//	    event, err := dec.Next()
//	    if err != nil {
//	        break
//	    }
//	    state.Apply(event)
//	}
//	resp := state.Response()
package stream
