// Package motion is the geometric primitive library: three pure generators
// (CircularArc, Linear, Orbit) turning a world snapshot plus a target
// description and a beat range into a sampled keyframe sequence, and the
// merge engine that combines concurrent sequences into one.
package motion

import (
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// Point is a position on the set's 2D plane.
type Point struct {
	X float64
	Y float64
}

// Span is a beat range with a sampling step (beats per frame). Every
// generator emits Frames()+1 keyframes covering both endpoints, so even a
// degenerate range produces at least two frames.
type Span struct {
	Start float64
	End   float64
	Step  float64
}

// Frames is the number of inter-frame intervals in the span.
func (s Span) Frames() int {
	n := int((s.End - s.Start) / s.Step)
	if n < 1 {
		return 1
	}
	return n
}

// Beat is the timeline position at normalized time t.
func (s Span) Beat(t float64) float64 {
	return s.Start + t*(s.End-s.Start)
}

// EaseInOut is the single easing law shared by the arc and line generators:
// cosine ease-in-out with zero velocity at both endpoints.
func EaseInOut(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FacingDelta is the signed shortest-arc difference from one facing to
// another, in (-180, 180].
func FacingDelta(from, to float64) float64 {
	return math.Mod(math.Mod(to-from+180, 360)+360, 360) - 180
}

// LerpFacing interpolates a facing along the shorter circular arc and
// re-wraps the result into [0, 360).
func LerpFacing(from, to, t float64) float64 {
	return dance.NormalizeFacing(from + FacingDelta(from, to)*t)
}

// copyDancers snapshots every pose so frames never alias the start state.
func copyDancers(state *dance.WorldState) map[dance.DancerID]dance.Pose {
	dancers := make(map[dance.DancerID]dance.Pose, len(state.Dancers))
	for did, p := range state.Dancers {
		dancers[did] = p
	}
	return dancers
}
