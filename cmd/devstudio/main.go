// devstudio - utilities behind the Claude DevStudio front end: stream-json
// transcript parsing and prompt context packing.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devstudio",
	Short: "Claude DevStudio stream and context utilities",
	Long: `devstudio - utilities behind the Claude DevStudio front end.

parse folds the Claude CLI's stream-json output into a structured response
(content, thinking, todos, tool calls). pack selects project files to fit an
agent's context token budget and renders them as prompt markdown.`,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(schemaCmd)
}
