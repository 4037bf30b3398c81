package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/contraviz/internal/export"
)

func init() {
	rootCmd.AddCommand(diagramCmd)
}

// diagramCmd renders a JSON call list as a Mermaid diagram of the dance
// program.
var diagramCmd = &cobra.Command{
	Use:   "diagram [file]",
	Short: "Render a call list as a Mermaid diagram",
	Long: `Diagram reads a JSON call list (the same shape animate --no-llm accepts)
and prints a Mermaid flowchart of the dance program. Calls that happen at
the same time are grouped.

Examples:
  contraviz diagram calls.json
  cat calls.json | contraviz diagram -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		var parsed danceInput
		if err := json.Unmarshal([]byte(input), &parsed); err != nil {
			return fmt.Errorf("decode call list: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), export.GenerateMermaid(parsed.Calls))
		return nil
	},
}
