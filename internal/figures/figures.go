// Package figures implements the named choreographic moves. Each figure is a
// Func that maps a start state, a beat range, and parameters to a keyframe
// sequence plus an end state; figures are looked up through an explicitly
// constructed Registry rather than a package-global table.
package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// DefaultBeatsPerFrame is the sampling step used when a Context does not
// override it.
const DefaultBeatsPerFrame = 0.25

// Context carries everything a figure needs for one invocation. Start is an
// immutable snapshot: figures must clone it before deriving an end state.
type Context struct {
	Call          dance.FigureCall
	Start         *dance.WorldState
	Participants  []dance.DancerID
	BeatsPerFrame float64
}

// Span is the sampling window for this invocation.
func (c *Context) Span() motion.Span {
	step := c.BeatsPerFrame
	if step <= 0 {
		step = DefaultBeatsPerFrame
	}
	return motion.Span{Start: c.Call.BeatStart, End: c.Call.BeatEnd, Step: step}
}

// Duration is the invocation's beat span.
func (c *Context) Duration() float64 {
	return c.Call.Duration()
}

// FloatParam reads a numeric parameter, tolerating the numeric types JSON
// and hand-built maps produce.
func (c *Context) FloatParam(key string, def float64) float64 {
	v, ok := c.Call.Params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// PointParam reads an (x, y) parameter encoded as a two-element array.
func (c *Context) PointParam(key string) (motion.Point, bool) {
	v, ok := c.Call.Params[key]
	if !ok {
		return motion.Point{}, false
	}
	switch p := v.(type) {
	case []float64:
		if len(p) == 2 {
			return motion.Point{X: p[0], Y: p[1]}, true
		}
	case [2]float64:
		return motion.Point{X: p[0], Y: p[1]}, true
	case []any:
		if len(p) != 2 {
			return motion.Point{}, false
		}
		x, okX := asFloat(p[0])
		y, okY := asFloat(p[1])
		if okX && okY {
			return motion.Point{X: x, Y: y}, true
		}
	}
	return motion.Point{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Func generates the keyframes for one figure invocation. A participant
// count the figure cannot handle is reported as *ParticipantCountError;
// softer problems become warnings on the result.
type Func func(*Context) (*dance.FigureResult, error)

// endStateAfter clones the start state, advances its beat, and adopts the
// last frame's poses for the given dancers.
func endStateAfter(
	start *dance.WorldState,
	frames []dance.Keyframe,
	beatEnd float64,
	participants ...dance.DancerID,
) *dance.WorldState {
	end := start.Clone()
	end.Beat = beatEnd
	if len(frames) == 0 {
		return end
	}
	last := frames[len(frames)-1]
	for _, did := range participants {
		if p, ok := last.Dancers[did]; ok {
			end.Dancers[did] = p
		}
	}
	return end
}

// centroid is the mean position of the given dancers.
func centroid(state *dance.WorldState, participants []dance.DancerID) motion.Point {
	var sx, sy float64
	for _, did := range participants {
		p := state.Dancers[did]
		sx += p.X
		sy += p.Y
	}
	n := float64(len(participants))
	return motion.Point{X: sx / n, Y: sy / n}
}
