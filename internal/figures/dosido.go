package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// DoSiDo circles two dancers clockwise around each other while both keep
// their original facing (pass right shoulders, back to back, return).
// The "turns" param scales the sweep (1.5 = do si do once and a half).
func DoSiDo(ctx *Context) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 2 {
		return nil, needExactly("do si do", 2, len(ctx.Participants))
	}

	d1, d2 := ctx.Participants[0], ctx.Participants[1]
	state := ctx.Start
	cx, cy := dance.Midpoint(state.Dancers[d1], state.Dancers[d2])
	sweep := ctx.FloatParam("turns", 1.0) * 360.0

	frames := motion.CircularArc(state, []dance.DancerID{d1, d2},
		motion.Point{X: cx, Y: cy}, sweep, ctx.Span(), false, nil)

	return &dance.FigureResult{
		Keyframes: frames,
		End:       endStateAfter(state, frames, ctx.Call.BeatEnd, d1, d2),
	}, nil
}
