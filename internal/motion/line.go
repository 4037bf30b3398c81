package motion

import "github.com/dusk-indust/contraviz/internal/dance"

// Linear generates keyframes for straight-line motion toward per-dancer
// target poses. Position follows the eased t; facing interpolates along the
// shorter circular arc. Dancers without a target are copied through
// unchanged in every frame.
func Linear(
	state *dance.WorldState,
	targets map[dance.DancerID]dance.Pose,
	span Span,
	hands []dance.HandLink,
) []dance.Keyframe {
	n := span.Frames()
	frames := make([]dance.Keyframe, 0, n+1)

	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		eased := EaseInOut(t)

		dancers := copyDancers(state)
		for did, target := range targets {
			src := state.Dancers[did]
			p := dancers[did]
			p.X = Lerp(src.X, target.X, eased)
			p.Y = Lerp(src.Y, target.Y, eased)
			p.Facing = LerpFacing(src.Facing, target.Facing, eased)
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
