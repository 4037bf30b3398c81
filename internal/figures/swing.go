package figures

import (
	"fmt"
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/motion"
)

// swingClosingDistance is how close the couple orbits mid-swing.
const swingClosingDistance = 0.15

// swingHalfSeparation is half the couple's side-by-side spacing at the end
// of the swing (1.0 = normal set spacing).
const swingHalfSeparation = 0.5

// Swing orbits a couple around their mutual midpoint, ending side by side at
// a caller-specified facing and midpoint with the lark on the left.
//
// Required params: target_facing (degrees) and end_center ([x, y]). Without
// them the figure produces no frames and a warning; the upstream caller is
// responsible for deciding the end formation.
//
// Optional params: revolutions overrides the end-formation search, which
// otherwise grid-searches duration/4 ± 0.5 revolutions at 0.01 steps
// (skipping candidates below 0.5) for the candidate whose closed-form orbit
// endpoint lands nearest the desired end positions. The chosen count only
// shapes the path; the final frame is snapped exactly to the desired
// endpoint either way.
func Swing(ctx *Context) (*dance.FigureResult, error) {
	if len(ctx.Participants) != 2 {
		return nil, needExactly("swing", 2, len(ctx.Participants))
	}

	state := ctx.Start
	d1, d2 := ctx.Participants[0], ctx.Participants[1]

	lark, robin := d1, d2
	if !d1.IsLark() {
		lark, robin = d2, d1
	}

	targetFacing := ctx.FloatParam("target_facing", math.NaN())
	endCenter, haveCenter := ctx.PointParam("end_center")
	if math.IsNaN(targetFacing) || !haveCenter {
		return &dance.FigureResult{
			End: state.Clone(),
			Warnings: []string{fmt.Sprintf(
				"swing requires 'target_facing' and 'end_center' params (got %v); "+
					"the caller must determine the end formation", ctx.Call.Params)},
		}, nil
	}

	// Desired end poses: couple centered on end_center, lark to the left of
	// the facing direction, robin to the right.
	facingRad := targetFacing * math.Pi / 180.0
	perpX := -math.Cos(facingRad)
	perpY := math.Sin(facingRad)
	desired := map[dance.DancerID]motion.Point{
		lark: {
			X: endCenter.X + perpX*swingHalfSeparation,
			Y: endCenter.Y + perpY*swingHalfSeparation,
		},
		robin: {
			X: endCenter.X - perpX*swingHalfSeparation,
			Y: endCenter.Y - perpY*swingHalfSeparation,
		},
	}

	revolutions := ctx.FloatParam("revolutions", math.NaN())
	if math.IsNaN(revolutions) {
		revolutions = searchRevolutions(state, d1, d2, ctx.Duration(), desired)
	}

	hands := []dance.HandLink{{A: lark, HandA: dance.HandRight, B: robin, HandB: dance.HandLeft}}
	frames := motion.Orbit(state, d1, d2, revolutions, swingClosingDistance, ctx.Span(), hands)

	end := state.Clone()
	end.Beat = ctx.Call.BeatEnd
	end.Dancers[lark] = dance.Pose{X: desired[lark].X, Y: desired[lark].Y, Facing: targetFacing}
	end.Dancers[robin] = dance.Pose{X: desired[robin].X, Y: desired[robin].Y, Facing: targetFacing}

	// Snap the last frame to the authoritative end poses. With a
	// well-chosen revolution count this is a tiny correction.
	if len(frames) > 0 {
		last := &frames[len(frames)-1]
		last.Dancers[lark] = end.Dancers[lark]
		last.Dancers[robin] = end.Dancers[robin]
	}

	return &dance.FigureResult{Keyframes: frames, End: end}, nil
}

// searchRevolutions picks the revolution count whose closed-form orbit
// endpoint minimizes the summed squared distance to the desired end
// positions. The search is local and bounded: the naive guess is one
// revolution per 4 beats, scanned ±0.5 at 0.01 increments with candidates
// below 0.5 skipped.
func searchRevolutions(
	state *dance.WorldState,
	d1, d2 dance.DancerID,
	duration float64,
	desired map[dance.DancerID]motion.Point,
) float64 {
	naive := duration / 4.0
	best := naive
	bestErr := math.Inf(1)

	for cent := -50; cent <= 50; cent++ {
		candidate := naive + float64(cent)/100.0
		if candidate < 0.5 {
			continue
		}
		ends := motion.OrbitEndpoints(state, d1, d2, candidate)
		if err := endpointError(ends, desired); err < bestErr {
			bestErr = err
			best = candidate
		}
	}

	return best
}

// endpointError is the summed squared distance between predicted and
// desired end positions.
func endpointError(got, want map[dance.DancerID]motion.Point) float64 {
	var total float64
	for did, g := range got {
		w := want[did]
		total += (g.X-w.X)*(g.X-w.X) + (g.Y-w.Y)*(g.Y-w.Y)
	}
	return total
}
