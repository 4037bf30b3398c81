package figures

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// PullByRight swaps a pair along the straight line between them, joined by
// right hands.
func PullByRight(ctx *Context) (*dance.FigureResult, error) {
	return pullBy(ctx, dance.HandRight)
}

// PullByLeft swaps a pair along the straight line between them, joined by
// left hands.
func PullByLeft(ctx *Context) (*dance.FigureResult, error) {
	return pullBy(ctx, dance.HandLeft)
}

func pullBy(ctx *Context, hand dance.Hand) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 2 {
		return nil, needExactly("pull by", 2, len(ctx.Participants))
	}

	d1, d2 := ctx.Participants[0], ctx.Participants[1]
	state := ctx.Start
	p1, p2 := state.Dancers[d1], state.Dancers[d2]

	// Swap positions; each dancer keeps its own facing.
	targets := map[dance.DancerID]dance.Pose{
		d1: {X: p2.X, Y: p2.Y, Facing: p1.Facing},
		d2: {X: p1.X, Y: p1.Y, Facing: p2.Facing},
	}
	hands := []dance.HandLink{{A: d1, HandA: hand, B: d2, HandB: hand}}

	frames := motion.Linear(state, targets, ctx.Span(), hands)

	end := state.Clone()
	end.Beat = ctx.Call.BeatEnd
	end.Dancers[d1] = targets[d1]
	end.Dancers[d2] = targets[d2]

	return &dance.FigureResult{Keyframes: frames, End: end}, nil
}
