package figures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/contraviz/internal/dance"
)

func testContext(t *testing.T, name string, beatStart, beatEnd float64,
	participants []dance.DancerID, params map[string]any) *Context {
	t.Helper()
	state, err := dance.MakeFormation(dance.FormationImproper, beatStart)
	require.NoError(t, err)
	return &Context{
		Call: dance.FigureCall{
			Name:      name,
			BeatStart: beatStart,
			BeatEnd:   beatEnd,
			Params:    params,
		},
		Start:         state,
		Participants:  participants,
		BeatsPerFrame: DefaultBeatsPerFrame,
	}
}

func TestRegistry_CanonicalAndAliases(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"swing", "partner_swing", "allemande_r", "ladies_chain", "dosido"} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "%s should be registered", name)
	}

	_, ok := reg.Lookup("mad_robin")
	assert.False(t, ok)

	names := reg.Names()
	assert.Contains(t, names, "robins_chain")
	assert.NotContains(t, names, "ladies_chain", "aliases are excluded from Names")
	assert.IsIncreasing(t, names)
}

func TestRegistry_RegisterCustomFigure(t *testing.T) {
	reg := NewRegistry()
	called := false
	reg.Register("mad_robin", func(ctx *Context) (*dance.FigureResult, error) {
		called = true
		return &dance.FigureResult{End: ctx.Start.Clone()}, nil
	}, "mad_robin_once")

	fn, ok := reg.Lookup("mad_robin_once")
	require.True(t, ok)
	_, err := fn(testContext(t, "mad_robin", 0, 4, nil, nil))
	require.NoError(t, err)
	assert.True(t, called)
}

func TestAllemande_EndpointContinuity(t *testing.T) {
	pair := []dance.DancerID{dance.UpLark, dance.DownRobin}
	ctx := testContext(t, "allemande_right", 0, 8, pair, map[string]any{"turns": 1.0})

	result, err := AllemandeRight(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Keyframes)

	first := result.Keyframes[0]
	last := result.Keyframes[len(result.Keyframes)-1]
	for _, did := range pair {
		assert.InDelta(t, ctx.Start.Dancers[did].X, first.Dancers[did].X, 1e-9,
			"first frame equals the start snapshot")
		assert.Equal(t, result.End.Dancers[did], last.Dancers[did],
			"last frame equals the reported end state")
	}
	assert.Equal(t, 8.0, result.End.Beat)

	require.Len(t, first.Hands, 1)
	assert.Equal(t, dance.HandRight, first.Hands[0].HandA, "allemande right joins right hands")
}

func TestAllemande_RejectsWrongCount(t *testing.T) {
	ctx := testContext(t, "allemande_left", 0, 4, dance.AllDancers(), nil)
	_, err := AllemandeLeft(ctx)

	var count *ParticipantCountError
	require.ErrorAs(t, err, &count)
	assert.Equal(t, 4, count.Got)
	assert.Contains(t, count.Error(), "participants")
}

func TestPullBy_SwapsPositionsKeepsFacing(t *testing.T) {
	pair := []dance.DancerID{dance.UpLark, dance.DownRobin}
	ctx := testContext(t, "pull_by_right", 0, 2, pair, nil)

	result, err := PullByRight(ctx)
	require.NoError(t, err)

	start := ctx.Start
	assert.Equal(t, start.Dancers[dance.DownRobin].X, result.End.Dancers[dance.UpLark].X)
	assert.Equal(t, start.Dancers[dance.DownRobin].Y, result.End.Dancers[dance.UpLark].Y)
	assert.Equal(t, start.Dancers[dance.UpLark].Facing, result.End.Dancers[dance.UpLark].Facing,
		"pull by keeps each dancer's own facing")
}

func TestDoSiDo_MaintainsFacing(t *testing.T) {
	pair := []dance.DancerID{dance.UpRobin, dance.DownLark}
	ctx := testContext(t, "do_si_do", 0, 8, pair, map[string]any{"turns": 1.5})

	result, err := DoSiDo(ctx)
	require.NoError(t, err)
	for _, kf := range result.Keyframes {
		for _, did := range pair {
			assert.Equal(t, ctx.Start.Dancers[did].Facing, kf.Dancers[did].Facing,
				"do si do never changes facing")
		}
	}
}

func TestCircle_RingHands(t *testing.T) {
	ctx := testContext(t, "circle_left", 0, 8, dance.AllDancers(), nil)
	result, err := CircleLeft(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Keyframes)
	assert.Len(t, result.Keyframes[0].Hands, 4, "every ring dancer holds the next")
}

func TestStar_NoHandsMaintainsFacing(t *testing.T) {
	ctx := testContext(t, "star_right", 0, 8, dance.AllDancers(), nil)
	result, err := StarRight(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Keyframes)
	assert.Empty(t, result.Keyframes[0].Hands, "star dancers reach into the center")
	assert.Equal(t, ctx.Start.Dancers[dance.UpLark].Facing,
		result.Keyframes[5].Dancers[dance.UpLark].Facing)
}

func TestBalance_ReturnsToStart(t *testing.T) {
	ctx := testContext(t, "balance", 0, 4, dance.AllDancers(), nil)
	result, err := Balance(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Keyframes)

	for _, did := range dance.AllDancers() {
		assert.Equal(t, ctx.Start.Dancers[did], result.End.Dancers[did],
			"balance ends where it started")
	}

	// Mid-figure the pairs are closer together than at the start.
	mid := result.Keyframes[len(result.Keyframes)/2]
	startDist := dance.Distance(ctx.Start.Dancers[dance.UpLark], ctx.Start.Dancers[dance.UpRobin])
	midDist := dance.Distance(mid.Dancers[dance.UpLark], mid.Dancers[dance.UpRobin])
	assert.Less(t, midDist, startDist)

	// And the joined sequence stays strictly increasing across the seam.
	for i := 1; i < len(result.Keyframes); i++ {
		assert.Greater(t, result.Keyframes[i].Beat, result.Keyframes[i-1].Beat)
	}
}

func TestPetronella_RotatesRingOnePlace(t *testing.T) {
	ctx := testContext(t, "petronella", 0, 4, dance.AllDancers(), nil)
	result, err := Petronella(ctx)
	require.NoError(t, err)

	// Every dancer must land exactly on some other dancer's start position.
	startPositions := make(map[[2]float64]bool, 4)
	for _, did := range dance.AllDancers() {
		p := ctx.Start.Dancers[did]
		startPositions[[2]float64{p.X, p.Y}] = true
	}
	for _, did := range dance.AllDancers() {
		p := result.End.Dancers[did]
		assert.True(t, startPositions[[2]float64{p.X, p.Y}],
			"%s must land on a ring position", did)
		moved := p.X != ctx.Start.Dancers[did].X || p.Y != ctx.Start.Dancers[did].Y
		assert.True(t, moved, "%s must move to the next place", did)
		assert.Equal(t, dance.NormalizeFacing(ctx.Start.Dancers[did].Facing+270), p.Facing,
			"%s spins 270 clockwise", did)
	}
}

func TestRobinsChain_RobinsCrossTheSet(t *testing.T) {
	ctx := testContext(t, "robins_chain", 0, 8, dance.AllDancers(), nil)
	result, err := RobinsChain(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, result.Keyframes)

	// Robins end on the other side of the set from where they started.
	for _, r := range []dance.DancerID{dance.UpRobin, dance.DownRobin} {
		assert.NotEqual(t,
			ctx.Start.Dancers[r].Y > 0,
			result.End.Dancers[r].Y > 0,
			"%s must cross to the other side", r)
	}

	for i := 1; i < len(result.Keyframes); i++ {
		assert.Greater(t, result.Keyframes[i].Beat, result.Keyframes[i-1].Beat,
			"chain frames stay strictly increasing across both phases")
	}
}

func TestRobinsChain_RejectsPairOnly(t *testing.T) {
	ctx := testContext(t, "robins_chain", 0, 8,
		[]dance.DancerID{dance.UpRobin, dance.DownRobin}, nil)
	_, err := RobinsChain(ctx)
	var count *ParticipantCountError
	require.ErrorAs(t, err, &count)
}
