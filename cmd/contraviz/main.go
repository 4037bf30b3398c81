// Package main implements the contraviz CLI: animate contra dances from
// written notation, list known figures, and serve the animation engine over
// MCP.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// verbose enables debug logging.
	verbose bool
	// version is set by the linker at build time.
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contraviz",
	Short: "Animate contra dances from written notation",
	Long: `contraviz turns contra dance notation into a keyframe animation of a
single hands-four: two couples, four dancers, 64 beats.

Notation is parsed with a language model, the figure geometry is generated
deterministically, and the result is rendered as a self-contained HTML page
or an ASCII preview.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the CLI logger. Debug level when --verbose is set.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
