package mcptools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/orchestrator"
	"github.com/dusk-indust/contraviz/internal/sanity"
)

// DanceService handles MCP tool calls for the animation server mode.
type DanceService struct {
	registry *figures.Registry
	cfg      orchestrator.Config
	log      *zap.Logger
}

// NewDanceService creates a DanceService. A nil logger is replaced with a
// no-op logger.
func NewDanceService(registry *figures.Registry, cfg orchestrator.Config, log *zap.Logger) *DanceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DanceService{registry: registry, cfg: cfg, log: log}
}

// AnimateDance runs the pipeline over the given calls and returns the
// merged timeline.
func (s *DanceService) AnimateDance(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnimateDanceInput,
) (*mcp.CallToolResult, AnimateDanceOutput, error) {
	cfg := s.cfg
	if input.Formation != "" {
		formation, err := dance.ParseFormation(input.Formation)
		if err != nil {
			return nil, AnimateDanceOutput{}, err
		}
		cfg.Formation = formation
	}
	if input.BeatsPerFrame > 0 {
		cfg.BeatsPerFrame = input.BeatsPerFrame
	}
	if len(input.Calls) == 0 {
		return nil, AnimateDanceOutput{}, fmt.Errorf("animate_dance requires at least one call")
	}

	pipeline := orchestrator.New(cfg, s.registry, s.log)
	result, err := pipeline.Run(input.Calls)
	if err != nil {
		return nil, AnimateDanceOutput{}, err
	}

	return nil, AnimateDanceOutput{
		RunID:     result.RunID,
		Frames:    len(result.Keyframes),
		Beats:     result.Final.Beat,
		Keyframes: result.Keyframes,
		Warnings:  result.Warnings,
	}, nil
}

// ListFigures returns all registered figure names, canonical form only.
func (s *DanceService) ListFigures(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListFiguresInput,
) (*mcp.CallToolResult, ListFiguresOutput, error) {
	return nil, ListFiguresOutput{Figures: s.registry.Names()}, nil
}

// CheckTimeline runs the sanity sweeps over an externally supplied timeline.
func (s *DanceService) CheckTimeline(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CheckTimelineInput,
) (*mcp.CallToolResult, CheckTimelineOutput, error) {
	if len(input.Keyframes) == 0 {
		return nil, CheckTimelineOutput{}, fmt.Errorf("check_timeline requires at least one keyframe")
	}

	cfg := sanity.DefaultConfig()
	if input.MinDistance > 0 {
		cfg.MinDistance = input.MinDistance
	}
	if input.MaxSpeed > 0 {
		cfg.MaxSpeed = input.MaxSpeed
	}
	if input.MaxSpin > 0 {
		cfg.MaxSpin = input.MaxSpin
	}

	warnings := sanity.RunAll(input.Keyframes, cfg)
	return nil, CheckTimelineOutput{
		Clean:    len(warnings) == 0,
		Warnings: warnings,
	}, nil
}
