package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// StarLeft puts left hands in the center and walks counter-clockwise.
func StarLeft(ctx *Context) (*dance.FigureResult, error) {
	return star(ctx, false)
}

// StarRight puts right hands in the center and walks clockwise.
func StarRight(ctx *Context) (*dance.FigureResult, error) {
	return star(ctx, true)
}

func star(ctx *Context, clockwise bool) (*dance.FigureResult, error) {
	if len(ctx.Participants) < 2 {
		return nil, &ParticipantCountError{Figure: "star", Want: "at least 2", Got: len(ctx.Participants)}
	}

	state := ctx.Start
	center := centroid(state, ctx.Participants)

	sweep := ctx.FloatParam("turns", 1.0) * 360.0
	if !clockwise {
		sweep = -sweep
	}

	// Dancers reach into the center rather than holding each other, so a
	// star carries no hand links; they face their direction of travel.
	frames := motion.CircularArc(state, ctx.Participants, center, sweep, ctx.Span(), false, nil)

	return &dance.FigureResult{
		Keyframes: frames,
		End:       endStateAfter(state, frames, ctx.Call.BeatEnd, ctx.Participants...),
	}, nil
}
