package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/contraviz/internal/figures"
)

func init() {
	rootCmd.AddCommand(figuresCmd)
}

// figuresCmd lists every figure the engine can generate.
var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "List the figures the animation engine knows",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range figures.NewRegistry().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
