package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// fakeCompleter returns canned responses keyed by a substring of the prompt,
// falling back to a default. It records every prompt it sees.
type fakeCompleter struct {
	mu        sync.Mutex
	responses map[string]string
	fallback  string
	err       error
	prompts   []string
}

func (f *fakeCompleter) Complete(_ context.Context, _, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}
	for key, resp := range f.responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return f.fallback, nil
}

func TestParser_HappyPath(t *testing.T) {
	fake := &fakeCompleter{fallback: "```json\n" + `{
		"formation": "improper",
		"calls": [
			{"name": "balance", "beat_start": 0, "beat_end": 4, "participants": ["neighbors"]},
			{"name": "swing", "beat_start": 4, "beat_end": 12, "participants": ["neighbors"],
			 "raw_text": "neighbors balance and swing"}
		]
	}` + "\n```"}

	calls, formation, err := NewParser(fake, nil).Parse(context.Background(), "neighbors balance and swing")
	require.NoError(t, err)

	assert.Equal(t, dance.FormationImproper, formation)
	require.Len(t, calls, 2)
	assert.Equal(t, "balance", calls[0].Name)
	assert.Equal(t, 4.0, calls[1].BeatStart)
	assert.Equal(t, []string{"neighbors"}, calls[1].Participants)
	assert.Equal(t, "neighbors balance and swing", calls[1].RawText)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "neighbors balance and swing")
}

func TestParser_RejectsUnknownFormation(t *testing.T) {
	fake := &fakeCompleter{fallback: `{"formation": "square", "calls": [{"name": "swing", "beat_start": 0, "beat_end": 8}]}`}
	_, _, err := NewParser(fake, nil).Parse(context.Background(), "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "square")
}

func TestParser_RejectsEmptyCallList(t *testing.T) {
	fake := &fakeCompleter{fallback: `{"formation": "improper", "calls": []}`}
	_, _, err := NewParser(fake, nil).Parse(context.Background(), "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calls")
}

func TestParser_PropagatesCompleterError(t *testing.T) {
	wantErr := errors.New("api down")
	fake := &fakeCompleter{err: wantErr}
	_, _, err := NewParser(fake, nil).Parse(context.Background(), "whatever")
	assert.ErrorIs(t, err, wantErr)
}

func TestParser_RejectsNonJSON(t *testing.T) {
	fake := &fakeCompleter{fallback: "Sure! Here is the dance you asked for."}
	_, _, err := NewParser(fake, nil).Parse(context.Background(), "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode model response")
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`  {"a":1}  `))
}

func TestEndFormationResolver_FillsOnlySwings(t *testing.T) {
	calls := []dance.FigureCall{
		{Name: "balance", BeatStart: 0, BeatEnd: 4, Participants: []string{"neighbors"}},
		{Name: "swing", BeatStart: 4, BeatEnd: 12, Participants: []string{"neighbors"}},
		{Name: "circle_left", BeatStart: 12, BeatEnd: 20, Participants: []string{"all"}, Params: map[string]any{"turns": 0.75}},
	}

	fake := &fakeCompleter{fallback: `{"target_facing": 90, "end_center": [0.0, 0.5]}`}
	resolved, err := NewEndFormationResolver(fake, nil).Resolve(context.Background(), calls)
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	assert.Nil(t, resolved[0].Params, "non-swing calls stay untouched")
	assert.Equal(t, map[string]any{"turns": 0.75}, resolved[2].Params)

	require.NotNil(t, resolved[1].Params)
	assert.Equal(t, 90.0, resolved[1].Params["target_facing"])
	assert.Equal(t, []float64{0.0, 0.5}, resolved[1].Params["end_center"])

	// Input slice is not mutated.
	assert.Nil(t, calls[1].Params)

	assert.Len(t, fake.prompts, 1, "one query for the single unresolved swing")
}

func TestEndFormationResolver_SkipsResolvedSwings(t *testing.T) {
	calls := []dance.FigureCall{
		{Name: "swing", BeatStart: 0, BeatEnd: 8, Params: map[string]any{
			"target_facing": 180.0,
			"end_center":    []float64{0, 0},
		}},
	}

	fake := &fakeCompleter{fallback: `{"target_facing": 0, "end_center": [9, 9]}`}
	resolved, err := NewEndFormationResolver(fake, nil).Resolve(context.Background(), calls)
	require.NoError(t, err)

	assert.Equal(t, 180.0, resolved[0].Params["target_facing"])
	assert.Empty(t, fake.prompts, "no queries when params are already present")
}

func TestEndFormationResolver_ResolvesManyConcurrently(t *testing.T) {
	var calls []dance.FigureCall
	for i := 0; i < 8; i++ {
		calls = append(calls, dance.FigureCall{
			Name:      "swing",
			BeatStart: float64(i * 8),
			BeatEnd:   float64(i*8 + 8),
		})
	}

	fake := &fakeCompleter{fallback: `{"target_facing": 270, "end_center": [0.5, -0.5]}`}
	resolved, err := NewEndFormationResolver(fake, nil).Resolve(context.Background(), calls)
	require.NoError(t, err)

	for i, c := range resolved {
		require.NotNil(t, c.Params, "call %d", i)
		assert.Equal(t, 270.0, c.Params["target_facing"], "call %d", i)
	}
	assert.Len(t, fake.prompts, 8)
}

func TestEndFormationResolver_PropagatesError(t *testing.T) {
	wantErr := errors.New("rate limited")
	fake := &fakeCompleter{err: wantErr}
	_, err := NewEndFormationResolver(fake, nil).Resolve(context.Background(), []dance.FigureCall{
		{Name: "swing", BeatStart: 0, BeatEnd: 8},
	})
	assert.ErrorIs(t, err, wantErr)
}
