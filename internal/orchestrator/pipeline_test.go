package orchestrator

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
)

func newTestPipeline() *Pipeline {
	return New(DefaultConfig(), figures.NewRegistry(), nil)
}

func improperStart(t *testing.T) *dance.WorldState {
	t.Helper()
	st, err := dance.MakeFormation(dance.FormationImproper, 0)
	require.NoError(t, err)
	return st
}

func call(name string, start, end float64, participants ...string) dance.FigureCall {
	return dance.FigureCall{
		Name:         name,
		BeatStart:    start,
		BeatEnd:      end,
		Participants: participants,
	}
}

func assertBeatsIncrease(t *testing.T, frames []dance.Keyframe) {
	t.Helper()
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i].Beat, frames[i-1].Beat,
			"beats must strictly increase at frame %d", i)
	}
}

func TestRun_NoCalls(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run(nil)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Keyframes, 1)
	assert.Equal(t, 0.0, res.Keyframes[0].Beat)
	assert.Equal(t, improperStart(t).Dancers, res.Final.Dancers)
}

func TestRun_SingleCircle(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{call("circle_left", 0, 8, "all")})
	require.NoError(t, err)

	assert.Empty(t, res.Warnings)
	assertBeatsIncrease(t, res.Keyframes)
	assert.Equal(t, 0.0, res.Keyframes[0].Beat)
	assert.InDelta(t, 8.0, res.Keyframes[len(res.Keyframes)-1].Beat, 1e-9)
	assert.InDelta(t, 8.0, res.Final.Beat, 1e-9)

	// A full circle returns everyone to their starting spot.
	start := improperStart(t)
	for _, did := range dance.AllDancers() {
		assert.InDelta(t, start.Dancers[did].X, res.Final.Dancers[did].X, 1e-6, "%s x", did)
		assert.InDelta(t, start.Dancers[did].Y, res.Final.Dancers[did].Y, 1e-6, "%s y", did)
	}
}

func TestRun_PerPairFallback(t *testing.T) {
	// Allemande only accepts two dancers; calling it with "neighbors"
	// resolves to four, so the pipeline retries once per neighbor pair.
	p := newTestPipeline()
	c := call("allemande_right", 0, 8, "neighbors")

	res, err := p.Run([]dance.FigureCall{c})
	require.NoError(t, err)
	assertBeatsIncrease(t, res.Keyframes)

	// Both pairs sweep through the set center at the same moment, so the
	// proximity sweep fires; the calls themselves run cleanly.
	require.NotEmpty(t, res.Warnings)
	for _, w := range res.Warnings {
		assert.Contains(t, w, "apart", "only proximity findings expected: %s", w)
	}

	// The default half turn trades places within each neighbor pair.
	start := improperStart(t)
	for _, did := range dance.AllDancers() {
		want := start.Dancers[did.Neighbor()]
		assert.InDelta(t, want.X, res.Final.Dancers[did].X, 1e-6, "%s x", did)
		assert.InDelta(t, want.Y, res.Final.Dancers[did].Y, 1e-6, "%s y", did)
	}

	// Mid-figure every dancer is away from their start, proving both pair
	// invocations contributed frames to the merged timeline.
	mid := res.Keyframes[len(res.Keyframes)/2]
	for _, did := range dance.AllDancers() {
		moved := dance.Distance(start.Dancers[did], mid.Dancers[did])
		assert.Greater(t, moved, 0.1, "%s should be mid-orbit", did)
	}
}

func TestRun_SimultaneousCallsMerge(t *testing.T) {
	// Larks and robins allemande in the same beat window; the two calls
	// share one merged frame grid instead of appending sequentially.
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{
		call("allemande_right", 0, 8, "larks"),
		call("allemande_right", 0, 8, "robins"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assertBeatsIncrease(t, res.Keyframes)

	// One 8-beat window at the default quarter-beat step: 33 frames.
	assert.Len(t, res.Keyframes, 33)
	assert.InDelta(t, 8.0, res.Final.Beat, 1e-9)

	// Half a turn swaps each same-role pair.
	start := improperStart(t)
	assert.InDelta(t, start.Dancers[dance.DownLark].X, res.Final.Dancers[dance.UpLark].X, 1e-6)
	assert.InDelta(t, start.Dancers[dance.DownLark].Y, res.Final.Dancers[dance.UpLark].Y, 1e-6)
	assert.InDelta(t, start.Dancers[dance.DownRobin].X, res.Final.Dancers[dance.UpRobin].X, 1e-6)
	assert.InDelta(t, start.Dancers[dance.DownRobin].Y, res.Final.Dancers[dance.UpRobin].Y, 1e-6)
}

func TestRun_UnknownFigureWarnsAndContinues(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{
		call("flurb", 0, 4, "all"),
		call("circle_left", 4, 12, "all"),
	})
	require.NoError(t, err)

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], `unknown figure "flurb"`)
	assert.InDelta(t, 12.0, res.Final.Beat, 1e-9, "later calls still run")
}

func TestRun_UnknownReferenceWarns(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{call("circle_left", 0, 8, "cousins")})
	require.NoError(t, err)

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "unknown relationship reference")
	assert.InDelta(t, 8.0, res.Final.Beat, 1e-9, "a skipped call still consumes its window")
}

func TestRun_EmptyBeatWindowWarns(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{call("circle_left", 4, 4, "all")})
	require.NoError(t, err)

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "empty beat window")
	assert.InDelta(t, 4.0, res.Final.Beat, 1e-9)
}

func TestRun_WarningFigureKeepsGroupFrames(t *testing.T) {
	// A swing without end-formation params warns and yields no frames. The
	// star sharing its beat window must still animate: an empty sequence
	// must never reach the merge as the baseline.
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{
		call("swing", 0, 8, "neighbors"),
		call("star_right", 0, 8, "all"),
	})
	require.NoError(t, err)

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "target_facing")
	assert.Greater(t, len(res.Keyframes), 1, "the star's frames survive the merge")
	assert.InDelta(t, 8.0, res.Keyframes[len(res.Keyframes)-1].Beat, 1e-9)
	assert.InDelta(t, 8.0, res.Final.Beat, 1e-9)
}

func TestRun_SeamKeepsBothBoundaryFrames(t *testing.T) {
	// The facing change between a figure's end and the next figure's start
	// is instantaneous. Both boundary frames stay at the shared beat so the
	// snap sits in a zero-duration interval the spin sweep skips.
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{
		call("balance", 0, 4, "neighbors"),
		call("circle_left", 4, 12, "all"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	seam := 0
	for _, kf := range res.Keyframes {
		if math.Abs(kf.Beat-4.0) < 1e-9 {
			seam++
		}
	}
	assert.Equal(t, 2, seam, "both sides of the seam keep their frame")
	assert.InDelta(t, 12.0, res.Final.Beat, 1e-9)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, dance.FormationImproper, cfg.Formation)
	assert.Equal(t, 1.0, cfg.Progression, "one position per 64-beat cycle")
	assert.Equal(t, figures.DefaultBeatsPerFrame, cfg.BeatsPerFrame)
}

func TestRun_ProgressionCheckedAtFullCycle(t *testing.T) {
	// Eight full circles fill a 64-beat cycle but leave everyone where
	// they started, so every dancer misses the expected progression.
	var calls []dance.FigureCall
	for i := 0; i < 8; i++ {
		calls = append(calls, call("circle_left", float64(i*8), float64(i*8+8), "all"))
	}

	p := newTestPipeline()
	res, err := p.Run(calls)
	require.NoError(t, err)

	var progression []string
	for _, w := range res.Warnings {
		if strings.HasPrefix(w, "progression:") {
			progression = append(progression, w)
		}
	}
	assert.Len(t, progression, 4, "all four dancers failed to progress")
}

func TestRun_ProgressionSkippedForShortTimeline(t *testing.T) {
	p := newTestPipeline()
	res, err := p.Run([]dance.FigureCall{call("circle_left", 0, 8, "all")})
	require.NoError(t, err)

	for _, w := range res.Warnings {
		assert.NotContains(t, w, "progression", "8 beats is too short to judge progression")
	}
}

func TestGroupSimultaneous(t *testing.T) {
	calls := []dance.FigureCall{
		call("allemande_right", 0, 8, "larks"),
		call("allemande_left", 0, 8, "robins"),
		call("circle_left", 8, 16, "all"),
		call("circle_right", 16, 24, "all"),
	}

	groups := groupSimultaneous(calls)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 2)
	assert.Len(t, groups[1], 1)
	assert.Len(t, groups[2], 1)
}
