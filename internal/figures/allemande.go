package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// AllemandeRight turns a pair clockwise around their midpoint by right hands.
func AllemandeRight(ctx *Context) (*dance.FigureResult, error) {
	return allemande(ctx, dance.HandRight, true)
}

// AllemandeLeft turns a pair counter-clockwise around their midpoint by left
// hands.
func AllemandeLeft(ctx *Context) (*dance.FigureResult, error) {
	return allemande(ctx, dance.HandLeft, false)
}

func allemande(ctx *Context, hand dance.Hand, clockwise bool) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 2 {
		return nil, needExactly("allemande", 2, len(ctx.Participants))
	}

	d1, d2 := ctx.Participants[0], ctx.Participants[1]
	sweep := ctx.FloatParam("turns", 0.5) * 360.0
	if !clockwise {
		sweep = -sweep
	}

	state := ctx.Start
	cx, cy := dance.Midpoint(state.Dancers[d1], state.Dancers[d2])
	hands := []dance.HandLink{{A: d1, HandA: hand, B: d2, HandB: hand}}

	frames := motion.CircularArc(state, []dance.DancerID{d1, d2},
		motion.Point{X: cx, Y: cy}, sweep, ctx.Span(), true, hands)

	return &dance.FigureResult{
		Keyframes: frames,
		End:       endStateAfter(state, frames, ctx.Call.BeatEnd, d1, d2),
	}, nil
}
