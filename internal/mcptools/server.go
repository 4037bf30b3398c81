package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewDanceMCPServer creates an MCP server with the 3 animation tools
// registered: animate_dance, list_figures, and check_timeline.
func NewDanceMCPServer(svc *DanceService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "contraviz",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "animate_dance",
		Description: "Animate a contra dance from an ordered list of figure calls. Returns the merged keyframe timeline plus any sanity warnings.",
	}, svc.AnimateDance)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_figures",
		Description: "List all figure names the animation engine knows how to generate.",
	}, svc.ListFigures)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_timeline",
		Description: "Run the collision, speed, and spin sweeps over a keyframe timeline without regenerating it.",
	}, svc.CheckTimeline)

	return server
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunMCPServerHTTP starts an HTTP server exposing the animation MCP tools.
func RunMCPServerHTTP(ctx context.Context, svc *DanceService, addr string) error {
	server := NewDanceMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
