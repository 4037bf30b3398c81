package figures

import (
	"math"
	"sort"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// Petronella moves each of the four ring dancers into the place of the
// dancer on their right, spinning 270° clockwise so everyone still faces
// the center of the ring. Typically 4 beats after a ring balance.
func Petronella(ctx *Context) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 4 {
		return nil, needExactly("petronella", 4, len(ctx.Participants))
	}

	state := ctx.Start
	center := centroid(state, ctx.Participants)

	// Ring order: sort by angle about the center.
	ring := append([]dance.DancerID(nil), ctx.Participants...)
	sort.Slice(ring, func(i, j int) bool {
		return ringAngle(state, ring[i], center) < ringAngle(state, ring[j], center)
	})

	// Each dancer takes the next clockwise position and adds 270° CW.
	targets := make(map[dance.DancerID]dance.Pose, 4)
	for i, did := range ring {
		next := state.Dancers[ring[(i+1)%4]]
		curr := state.Dancers[did]
		targets[did] = dance.Pose{
			X:      next.X,
			Y:      next.Y,
			Facing: dance.NormalizeFacing(curr.Facing + 270),
		}
	}

	frames := motion.Linear(state, targets, ctx.Span(), nil)

	end := state.Clone()
	end.Beat = ctx.Call.BeatEnd
	for did, target := range targets {
		end.Dancers[did] = target
	}

	return &dance.FigureResult{Keyframes: frames, End: end}, nil
}

func ringAngle(state *dance.WorldState, did dance.DancerID, center motion.Point) float64 {
	p := state.Dancers[did]
	return math.Atan2(p.X-center.X, p.Y-center.Y)
}
