package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/orchestrator"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	p := orchestrator.New(orchestrator.DefaultConfig(), figures.NewRegistry(), nil)
	result, err := p.Run([]dance.FigureCall{
		{Name: "circle_left", BeatStart: 0, BeatEnd: 8, Participants: []string{"all"}},
	})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteJSON(&buf, BuildTimelineExport("test-dance", result)))

	var decoded TimelineExport
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &decoded))
	assert.Equal(t, "test-dance", decoded.Name)
	assert.Equal(t, result.RunID, decoded.RunID)
	assert.Equal(t, 33, decoded.Frames)
	assert.Len(t, decoded.Keyframes, 33)
	assert.NotEmpty(t, decoded.ExportedAt)
}

func TestGenerateMermaid(t *testing.T) {
	calls := []dance.FigureCall{
		{Name: "allemande_right", BeatStart: 0, BeatEnd: 8, Participants: []string{"larks"}},
		{Name: "allemande_right", BeatStart: 0, BeatEnd: 8, Participants: []string{"robins"}},
		{Name: "circle_left", BeatStart: 8, BeatEnd: 16, Participants: []string{"all"}},
	}

	diagram := GenerateMermaid(calls)
	assert.True(t, strings.HasPrefix(diagram, "graph TD"))
	assert.Contains(t, diagram, `subgraph G0["beats 0-8"]`, "simultaneous calls share a subgraph")
	assert.Contains(t, diagram, "circle_left 8-16 (all)")
	assert.Contains(t, diagram, "-->", "sequential calls are connected")
}

func TestGenerateMermaid_Empty(t *testing.T) {
	assert.Equal(t, "graph TD\n", GenerateMermaid(nil))
}
