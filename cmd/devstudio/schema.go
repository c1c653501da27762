package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/ihiteshgupta/claude-devstudio/stream"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit the JSON Schema of the parsed response",
	Long: `Prints the JSON Schema for the response shape produced by parse --json.
Front-end consumers use it to validate the contract across versions.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := &jsonschema.Reflector{
			DoNotReference: true,
			ExpandedStruct: true,
		}
		schema := reflector.Reflect(&stream.Response{})

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}
