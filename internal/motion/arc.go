package motion

import (
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// CircularArc generates keyframes for dancers orbiting a fixed center.
// Each participant keeps its starting radius and angular offset from the
// center; its angle at normalized time t is initial + EaseInOut(t)·sweep.
// A positive sweep is clockwise. With faceCenter the facing is recomputed
// toward the center every frame; otherwise it stays frozen at its start
// value. Angles are measured clockwise from north via atan2(dx, dy); the
// x-first argument order is a wire-level convention consumers rely on.
func CircularArc(
	state *dance.WorldState,
	participants []dance.DancerID,
	center Point,
	sweepDeg float64,
	span Span,
	faceCenter bool,
	hands []dance.HandLink,
) []dance.Keyframe {
	initialAngles := make(map[dance.DancerID]float64, len(participants))
	radii := make(map[dance.DancerID]float64, len(participants))
	for _, did := range participants {
		p := state.Dancers[did]
		dx := p.X - center.X
		dy := p.Y - center.Y
		initialAngles[did] = math.Atan2(dx, dy)
		radii[did] = math.Hypot(dx, dy)
	}

	sweepRad := sweepDeg * math.Pi / 180.0
	n := span.Frames()
	frames := make([]dance.Keyframe, 0, n+1)

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		offset := EaseInOut(t) * sweepRad

		dancers := copyDancers(state)
		for _, did := range participants {
			angle := initialAngles[did] + offset
			r := radii[did]
			p := dancers[did]
			p.X = center.X + r*math.Sin(angle)
			p.Y = center.Y + r*math.Cos(angle)
			if faceCenter {
				p.Facing = dance.NormalizeFacing(
					math.Atan2(center.X-p.X, center.Y-p.Y) * 180.0 / math.Pi)
			}
			dancers[did] = p
		}

		frames = append(frames, dance.Keyframe{
			Beat:    span.Beat(t),
			Dancers: dancers,
			Hands:   hands,
		})
	}

	return frames
}
