package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// CircleLeft walks the ring counter-clockwise with hands joined.
func CircleLeft(ctx *Context) (*dance.FigureResult, error) {
	return circle(ctx, false)
}

// CircleRight walks the ring clockwise with hands joined.
func CircleRight(ctx *Context) (*dance.FigureResult, error) {
	return circle(ctx, true)
}

func circle(ctx *Context, clockwise bool) (*dance.FigureResult, error) {
	if len(ctx.Participants) < 2 {
		return nil, &ParticipantCountError{Figure: "circle", Want: "at least 2", Got: len(ctx.Participants)}
	}

	state := ctx.Start
	center := centroid(state, ctx.Participants)

	sweep := ctx.FloatParam("turns", 1.0) * 360.0
	if !clockwise {
		sweep = -sweep
	}

	// Each dancer joins hands with the next dancer around the ring.
	hands := make([]dance.HandLink, 0, len(ctx.Participants))
	for i := range ctx.Participants {
		j := (i + 1) % len(ctx.Participants)
		hands = append(hands, dance.HandLink{
			A: ctx.Participants[i], HandA: dance.HandLeft,
			B: ctx.Participants[j], HandB: dance.HandRight,
		})
	}

	frames := motion.CircularArc(state, ctx.Participants, center, sweep, ctx.Span(), true, hands)

	return &dance.FigureResult{
		Keyframes: frames,
		End:       endStateAfter(state, frames, ctx.Call.BeatEnd, ctx.Participants...),
	}, nil
}
