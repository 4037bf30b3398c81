// Package export serializes finished runs for downstream tooling: a JSON
// timeline document and a Mermaid diagram of the call sequence.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/orchestrator"
)

// TimelineExport is the top-level JSON export structure.
type TimelineExport struct {
	Name       string           `json:"name"`
	RunID      string           `json:"runId"`
	ExportedAt string           `json:"exportedAt"`
	Beats      float64          `json:"beats"`
	Frames     int              `json:"frames"`
	Warnings   []string         `json:"warnings,omitempty"`
	Keyframes  []dance.Keyframe `json:"keyframes"`
}

// BuildTimelineExport wraps a run result with export metadata.
func BuildTimelineExport(name string, result *orchestrator.Result) *TimelineExport {
	return &TimelineExport{
		Name:       name,
		RunID:      result.RunID,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Beats:      result.Final.Beat,
		Frames:     len(result.Keyframes),
		Warnings:   result.Warnings,
		Keyframes:  result.Keyframes,
	}
}

// WriteJSON writes the export as indented JSON.
func WriteJSON(w io.Writer, e *TimelineExport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("export: encode timeline: %w", err)
	}
	return nil
}
