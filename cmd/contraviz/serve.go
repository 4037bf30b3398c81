package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dusk-indust/contraviz/internal/config"
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/mcptools"
	"github.com/dusk-indust/contraviz/internal/orchestrator"
)

var serveHTTP string

func init() {
	serveCmd.Flags().StringVar(&serveHTTP, "http", "", "serve MCP over HTTP on this address instead of stdio")
	rootCmd.AddCommand(serveCmd)
}

// serveCmd exposes the animation engine as an MCP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the animation engine over MCP",
	Long: `Serve runs an MCP server exposing three tools: animate_dance,
list_figures, and check_timeline. By default it speaks the stdio transport
for use as a subprocess server; --http switches to the streamable HTTP
transport.

Examples:
  # stdio transport (for MCP client configs)
  contraviz serve

  # HTTP transport
  contraviz serve --http :8137`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	proj, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := orchestrator.DefaultConfig()
	if proj.Formation != "" {
		if cfg.Formation, err = dance.ParseFormation(proj.Formation); err != nil {
			return err
		}
	}
	if proj.BeatsPerFrame > 0 {
		cfg.BeatsPerFrame = proj.BeatsPerFrame
	}

	svc := mcptools.NewDanceService(figures.NewRegistry(), cfg, log)

	if serveHTTP != "" {
		fmt.Fprintf(os.Stderr, "serving MCP over HTTP on %s\n", serveHTTP)
		return mcptools.RunMCPServerHTTP(cmd.Context(), svc, serveHTTP)
	}
	return mcptools.RunMCPServerStdio(cmd.Context(), mcptools.NewDanceMCPServer(svc))
}
