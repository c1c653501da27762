package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ihiteshgupta/claude-devstudio/stream"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Fold a stream-json transcript into a structured response",
	Long: `Reads newline-delimited JSON events from a file (or stdin) and folds
them into the accumulated response: content, thinking, todos, and tool calls.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open transcript: %w", err)
			}
			defer f.Close()
			r = f
		}

		resp, err := stream.Collect(r)
		if err != nil {
			return err
		}

		if parseJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		printResponse(os.Stdout, resp)
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit the response as JSON")
}

// printResponse renders a human-readable transcript summary.
func printResponse(w io.Writer, resp *stream.Response) {
	if resp.Thinking != "" {
		fmt.Fprintf(w, "## Thinking\n\n%s\n\n", strings.TrimSpace(resp.Thinking))
	}

	if resp.Content != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimSpace(resp.Content))
	}

	if len(resp.ToolCalls) > 0 {
		fmt.Fprintf(w, "\n## Tool Calls\n")
		for _, call := range resp.ToolCalls {
			fmt.Fprintf(w, "- %s [%s]", call.Name, call.Status)
			if call.Result != "" {
				fmt.Fprintf(w, ": %s", firstLine(call.Result))
			}
			fmt.Fprintln(w)
		}
	}

	if len(resp.SubAgentActions) > 0 {
		fmt.Fprintf(w, "\n## Sub-Agents\n")
		for _, action := range resp.SubAgentActions {
			fmt.Fprintf(w, "- %s [%s]: %s\n", action.Type, action.Status, action.Description)
		}
	}

	if len(resp.Todos) > 0 {
		fmt.Fprintf(w, "\n## Todos\n")
		for _, todo := range resp.Todos {
			marker := " "
			switch todo.Status {
			case stream.TodoStatusCompleted:
				marker = "x"
			case stream.TodoStatusInProgress:
				marker = "~"
			}
			fmt.Fprintf(w, "- [%s] %s\n", marker, todo.Content)
		}
	}

	if resp.Usage != nil {
		fmt.Fprintf(w, "\n%d in / %d out tokens", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if resp.Usage.CostUSD > 0 {
			fmt.Fprintf(w, " ($%.4f)", resp.Usage.CostUSD)
		}
		fmt.Fprintln(w)
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
