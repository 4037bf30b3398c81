package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// BoxTheGnat trades a pair's places over joined right hands: a half-orbit
// clockwise around their midpoint, ending face to face.
func BoxTheGnat(ctx *Context) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 2 {
		return nil, needExactly("box the gnat", 2, len(ctx.Participants))
	}

	d1, d2 := ctx.Participants[0], ctx.Participants[1]
	state := ctx.Start
	cx, cy := dance.Midpoint(state.Dancers[d1], state.Dancers[d2])
	hands := []dance.HandLink{{A: d1, HandA: dance.HandRight, B: d2, HandB: dance.HandRight}}

	frames := motion.CircularArc(state, []dance.DancerID{d1, d2},
		motion.Point{X: cx, Y: cy}, 180.0, ctx.Span(), true, hands)

	return &dance.FigureResult{
		Keyframes: frames,
		End:       endStateAfter(state, frames, ctx.Call.BeatEnd, d1, d2),
	}, nil
}
