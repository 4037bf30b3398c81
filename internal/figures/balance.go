package figures

import (
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// Balance steps each pair toward each other for the first half of the span,
// then back to where they started. Participants are paired by proximity.
// The step_distance param sets how far each dancer steps (default 0.3).
func Balance(ctx *Context) (*dance.FigureResult, error) {
	state := ctx.Start
	stepDistance := ctx.FloatParam("step_distance", 0.3)
	pairs := pairByProximity(state, ctx.Participants)

	midBeat := (ctx.Call.BeatStart + ctx.Call.BeatEnd) / 2
	step := ctx.Span().Step

	// Phase 1: step in toward the pair partner.
	targetsIn := make(map[dance.DancerID]dance.Pose, len(ctx.Participants))
	for _, pair := range pairs {
		p1 := state.Dancers[pair[0]]
		p2 := state.Dancers[pair[1]]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		dist := math.Hypot(dx, dy)
		var nx, ny float64
		if dist > 0 {
			nx, ny = dx/dist, dy/dist
		}
		targetsIn[pair[0]] = dance.Pose{X: p1.X + nx*stepDistance, Y: p1.Y + ny*stepDistance, Facing: p1.Facing}
		targetsIn[pair[1]] = dance.Pose{X: p2.X - nx*stepDistance, Y: p2.Y - ny*stepDistance, Facing: p2.Facing}
	}

	in := motion.Linear(state, targetsIn, motion.Span{Start: ctx.Call.BeatStart, End: midBeat, Step: step}, nil)

	// Phase 2: step back out from the mid state to the starting poses.
	midState := state.Clone()
	midState.Beat = midBeat
	if len(in) > 0 {
		for did, p := range in[len(in)-1].Dancers {
			midState.Dancers[did] = p
		}
	}

	targetsBack := make(map[dance.DancerID]dance.Pose, len(targetsIn))
	for did := range targetsIn {
		targetsBack[did] = state.Dancers[did]
	}

	back := motion.Linear(midState, targetsBack, motion.Span{Start: midBeat, End: ctx.Call.BeatEnd, Step: step}, nil)

	// Drop the duplicated mid-beat frame when joining the phases.
	frames := append(in, back[1:]...)

	end := state.Clone()
	end.Beat = ctx.Call.BeatEnd

	return &dance.FigureResult{Keyframes: frames, End: end}, nil
}

// pairByProximity greedily pairs each unused participant with its nearest
// unused companion.
func pairByProximity(state *dance.WorldState, participants []dance.DancerID) []dance.Pair {
	var pairs []dance.Pair
	used := make(map[dance.DancerID]bool, len(participants))

	for _, d1 := range participants {
		if used[d1] {
			continue
		}
		var best dance.DancerID
		bestDist := math.Inf(1)
		found := false
		for _, d2 := range participants {
			if d2 == d1 || used[d2] {
				continue
			}
			if d := dance.Distance(state.Dancers[d1], state.Dancers[d2]); d < bestDist {
				bestDist = d
				best = d2
				found = true
			}
		}
		if found {
			pairs = append(pairs, dance.Pair{d1, best})
			used[d1] = true
			used[best] = true
		}
	}

	return pairs
}
