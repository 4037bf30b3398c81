package mcptools

import "github.com/dusk-indust/contraviz/internal/dance"

// --- MCP tool types for the animation server mode (serve) ---
// These tools let an MCP client drive the animation engine with structured
// calls instead of shelling out to the CLI.

// AnimateDanceInput is the input for the animate_dance MCP tool.
type AnimateDanceInput struct {
	Calls         []dance.FigureCall `json:"calls" jsonschema:"ordered figure calls with beat windows"`
	Formation     string             `json:"formation,omitempty" jsonschema:"starting formation: improper (default) or beckett"`
	BeatsPerFrame float64            `json:"beatsPerFrame,omitempty" jsonschema:"keyframe sampling interval in beats (default 0.25)"`
}

// AnimateDanceOutput is the result of the animate_dance MCP tool.
type AnimateDanceOutput struct {
	RunID     string             `json:"runId"`
	Frames    int                `json:"frames"`
	Beats     float64            `json:"beats"`
	Keyframes []dance.Keyframe   `json:"keyframes"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// ListFiguresInput is the input for the list_figures MCP tool.
type ListFiguresInput struct{}

// ListFiguresOutput is the result of the list_figures MCP tool.
type ListFiguresOutput struct {
	Figures []string `json:"figures"`
}

// CheckTimelineInput is the input for the check_timeline MCP tool.
type CheckTimelineInput struct {
	Keyframes   []dance.Keyframe `json:"keyframes" jsonschema:"beat-ordered keyframes to inspect"`
	MinDistance float64          `json:"minDistance,omitempty" jsonschema:"closest allowed dancer spacing (default 0.3)"`
	MaxSpeed    float64          `json:"maxSpeed,omitempty" jsonschema:"fastest allowed travel in units per beat (default 1.0)"`
	MaxSpin     float64          `json:"maxSpin,omitempty" jsonschema:"fastest allowed facing change in degrees per beat (default 180)"`
}

// CheckTimelineOutput is the result of the check_timeline MCP tool.
type CheckTimelineOutput struct {
	Clean    bool     `json:"clean"`
	Warnings []string `json:"warnings,omitempty"`
}
