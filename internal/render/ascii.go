package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// Grid extents in set units. The hands-four lives within roughly one unit
// of the origin; a margin leaves room for progression.
const (
	gridHalfWidth  = 1.5
	gridHalfHeight = 2.5
	gridCellSize   = 0.25
)

// dancerGlyphs are the single-character markers on the grid.
var dancerGlyphs = map[dance.DancerID]string{
	dance.UpLark:    "L",
	dance.UpRobin:   "R",
	dance.DownLark:  "l",
	dance.DownRobin: "r",
}

var (
	larkColor  = color.New(color.FgCyan, color.Bold)
	robinColor = color.New(color.FgMagenta, color.Bold)
)

// WriteFrame draws one keyframe as a character grid, larks cyan and robins
// magenta, with north (up the set) at the top.
func WriteFrame(w io.Writer, kf dance.Keyframe) error {
	cols := int(2*gridHalfWidth/gridCellSize) + 1
	rows := int(2*gridHalfHeight/gridCellSize) + 1

	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = "."
		}
	}

	for _, did := range dance.AllDancers() {
		pose, ok := kf.Dancers[did]
		if !ok {
			continue
		}
		col := int(math.Round((pose.X + gridHalfWidth) / gridCellSize))
		row := int(math.Round((gridHalfHeight - pose.Y) / gridCellSize))
		if row < 0 || row >= rows || col < 0 || col >= cols {
			continue
		}
		glyph := dancerGlyphs[did]
		if did.IsLark() {
			grid[row][col] = larkColor.Sprint(glyph)
		} else {
			grid[row][col] = robinColor.Sprint(glyph)
		}
	}

	if _, err := fmt.Fprintf(w, "beat %.1f\n", kf.Beat); err != nil {
		return err
	}
	for _, row := range grid {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTimeline prints a compact one-line-per-frame view of the timeline:
// beat, each dancer's position and facing, and any annotation.
func WriteTimeline(w io.Writer, frames []dance.Keyframe) error {
	for _, kf := range frames {
		var parts []string
		for _, did := range dance.AllDancers() {
			pose, ok := kf.Dancers[did]
			if !ok {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s(%+.2f,%+.2f @%3.0f°)",
				dancerGlyphs[did], pose.X, pose.Y, pose.Facing))
		}
		line := fmt.Sprintf("%6.2f  %s", kf.Beat, strings.Join(parts, "  "))
		if kf.Annotation != "" {
			line += "  # " + kf.Annotation
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
