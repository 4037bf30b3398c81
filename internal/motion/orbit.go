package motion

import (
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// Orbit generates keyframes for a coupled swing: two dancers orbit their
// shared midpoint at constant angular speed (no easing). The radius
// contracts linearly from the initial half-separation to closingDistance
// over the first 10% of the span, holds through the middle 80%, and expands
// back over the final 10%. Both dancers face the shared center every frame.
func Orbit(
	state *dance.WorldState,
	a, b dance.DancerID,
	revolutions float64,
	closingDistance float64,
	span Span,
	hands []dance.HandLink,
) []dance.Keyframe {
	pa := state.Dancers[a]
	pb := state.Dancers[b]

	cx, cy := dance.Midpoint(pa, pb)
	initialR := dance.Distance(pa, pb) / 2

	angleA := math.Atan2(pa.X-cx, pa.Y-cy)
	angleB := math.Atan2(pb.X-cx, pb.Y-cy)

	totalAngle := revolutions * 2 * math.Pi
	n := span.Frames()
	frames := make([]dance.Keyframe, 0, n+1)

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		offset := t * totalAngle

		var r float64
		switch {
		case t < 0.1:
			r = Lerp(initialR, closingDistance, t/0.1)
		case t > 0.9:
			r = Lerp(closingDistance, initialR, (t-0.9)/0.1)
		default:
			r = closingDistance
		}

		dancers := copyDancers(state)
		dancers[a] = orbitPose(cx, cy, r, angleA+offset)
		dancers[b] = orbitPose(cx, cy, r, angleB+offset)

		frames = append(frames, dance.Keyframe{
			Beat:    span.Beat(t),
			Dancers: dancers,
			Hands:   hands,
		})
	}

	return frames
}

// orbitPose places a dancer on the orbit circle, facing the center.
func orbitPose(cx, cy, r, angle float64) dance.Pose {
	x := cx + r*math.Sin(angle)
	y := cy + r*math.Cos(angle)
	return dance.Pose{
		X: x,
		Y: y,
		Facing: dance.NormalizeFacing(
			math.Atan2(cx-x, cy-y) * 180.0 / math.Pi),
	}
}

// OrbitEndpoints predicts where Orbit would place both dancers at t=1
// without generating frames: the radius has reopened to the initial
// half-separation and the angle has advanced by the full sweep. Used by the
// swing's end-formation search.
func OrbitEndpoints(
	state *dance.WorldState,
	a, b dance.DancerID,
	revolutions float64,
) map[dance.DancerID]Point {
	pa := state.Dancers[a]
	pb := state.Dancers[b]

	cx, cy := dance.Midpoint(pa, pb)
	initialR := dance.Distance(pa, pb) / 2

	angleA := math.Atan2(pa.X-cx, pa.Y-cy) + revolutions*2*math.Pi
	angleB := math.Atan2(pb.X-cx, pb.Y-cy) + revolutions*2*math.Pi

	return map[dance.DancerID]Point{
		a: {X: cx + initialR*math.Sin(angleA), Y: cy + initialR*math.Cos(angleA)},
		b: {X: cx + initialR*math.Sin(angleB), Y: cy + initialR*math.Cos(angleB)},
	}
}
