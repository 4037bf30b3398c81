package figures

import (
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// RobinsChain runs the classic 8-beat chain: the two robins pull by right
// hands through the middle while the larks ease toward the center to
// receive, then each robin courtesy-turns with the nearest lark. All four
// dancers participate.
func RobinsChain(ctx *Context) (*dance.FigureResult, error) {
	state := ctx.Start

	var robins, larks []dance.DancerID
	for _, did := range ctx.Participants {
		if did.IsRobin() {
			robins = append(robins, did)
		} else {
			larks = append(larks, did)
		}
	}
	if len(robins) != 2 || len(larks) != 2 {
		return nil, &ParticipantCountError{
			Figure: "chain",
			Want:   "2 robins and 2 larks as",
			Got:    len(ctx.Participants),
		}
	}

	// The pull-by takes roughly the first 3/8 of the figure.
	midBeat := ctx.Call.BeatStart + ctx.Duration()*3/8
	step := ctx.Span().Step

	// Phase 1: robins swap positions; larks shift toward the center line.
	r1, r2 := robins[0], robins[1]
	pr1, pr2 := state.Dancers[r1], state.Dancers[r2]
	targets := map[dance.DancerID]dance.Pose{
		r1: {X: pr2.X, Y: pr2.Y, Facing: pr2.Facing},
		r2: {X: pr1.X, Y: pr1.Y, Facing: pr1.Facing},
	}
	for _, l := range larks {
		p := state.Dancers[l]
		targets[l] = dance.Pose{X: p.X * 0.7, Y: p.Y, Facing: p.Facing}
	}

	pullHands := []dance.HandLink{{A: r1, HandA: dance.HandRight, B: r2, HandB: dance.HandRight}}
	pull := motion.Linear(state, targets,
		motion.Span{Start: ctx.Call.BeatStart, End: midBeat, Step: step}, pullHands)

	midState := state.Clone()
	midState.Beat = midBeat
	if len(pull) > 0 {
		for did, p := range pull[len(pull)-1].Dancers {
			midState.Dancers[did] = p
		}
	}

	// Phase 2: courtesy turn. Pair each robin with its nearest free lark and
	// rotate the couple 180° counter-clockwise about their midpoint. The two
	// turns run concurrently over disjoint couples, so they merge into one
	// sequence for the window.
	var turns []motion.Sequence
	end := midState.Clone()
	usedLarks := make(map[dance.DancerID]bool, 2)
	for _, r := range robins {
		l := nearestLark(midState, r, larks, usedLarks)
		usedLarks[l] = true

		pr, pl := midState.Dancers[r], midState.Dancers[l]
		cx, cy := dance.Midpoint(pr, pl)
		turnHands := []dance.HandLink{{A: l, HandA: dance.HandLeft, B: r, HandB: dance.HandLeft}}

		kf := motion.CircularArc(midState, []dance.DancerID{r, l},
			motion.Point{X: cx, Y: cy}, -180.0,
			motion.Span{Start: midBeat, End: ctx.Call.BeatEnd, Step: step}, true, turnHands)
		if len(kf) > 0 {
			last := kf[len(kf)-1]
			end.Dancers[r] = last.Dancers[r]
			end.Dancers[l] = last.Dancers[l]
		}
		turns = append(turns, motion.Sequence{
			Frames: kf,
			Owns:   map[dance.DancerID]bool{r: true, l: true},
		})
	}
	end.Beat = ctx.Call.BeatEnd

	merged := motion.Merge(turns)
	// Drop the duplicated mid-beat frame when joining the phases.
	if len(merged) > 0 && len(pull) > 0 {
		merged = merged[1:]
	}
	frames := append(pull, merged...)

	return &dance.FigureResult{Keyframes: frames, End: end}, nil
}

func nearestLark(
	state *dance.WorldState,
	robin dance.DancerID,
	larks []dance.DancerID,
	used map[dance.DancerID]bool,
) dance.DancerID {
	var best dance.DancerID
	bestDist := math.Inf(1)
	for _, l := range larks {
		if used[l] {
			continue
		}
		if d := dance.Distance(state.Dancers[robin], state.Dancers[l]); d < bestDist {
			bestDist = d
			best = l
		}
	}
	return best
}
