package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ihiteshgupta/claude-devstudio/contextpack"
)

var (
	packAgent    string
	packBudget   int
	packReserve  int
	packMaxFiles int
	packJSON     bool
)

var packCmd = &cobra.Command{
	Use:   "pack <dir>",
	Short: "Pack project files into an agent's context token budget",
	Long: `Collects files under a project directory, selects the highest-priority
subset that fits the agent's token budget, and prints the result as prompt
markdown. Budgets and ignore rules can be overridden in .devstudio.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]

		config, err := contextpack.LoadConfig(root)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		maxFiles := packMaxFiles
		if maxFiles == 0 {
			maxFiles = config.MaxFiles
		}
		files, capped, err := contextpack.CollectFiles(root, contextpack.CollectOptions{
			MaxFiles:   maxFiles,
			IgnoreDirs: config.IgnoreDirs,
		})
		if err != nil {
			return fmt.Errorf("collect files: %w", err)
		}
		if capped {
			slog.Warn("file collection capped", "max_files", maxFiles)
		}

		budget := packBudget
		if budget == 0 {
			budget = config.Budget(packAgent)
		}
		reserve := packReserve
		if reserve == 0 {
			reserve = config.ReserveTokens
		}

		result := contextpack.Optimize(files, budget, reserve)
		if len(result.DroppedFiles) > 0 {
			slog.Warn("files dropped to fit budget",
				"dropped", len(result.DroppedFiles),
				"selected", len(result.Files),
				"total_tokens", result.TotalTokens)
		}

		if packJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Print(contextpack.Format(result))
		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&packAgent, "agent", "a", "developer",
		"Agent role whose budget applies")
	packCmd.Flags().IntVar(&packBudget, "budget", 0,
		"Token budget (default: the agent role's ceiling)")
	packCmd.Flags().IntVar(&packReserve, "reserve", 0,
		"Tokens reserved for prompt/response overhead")
	packCmd.Flags().IntVar(&packMaxFiles, "max-files", 0,
		"Stop collecting after this many files")
	packCmd.Flags().BoolVar(&packJSON, "json", false, "Emit the packing result as JSON")
}
