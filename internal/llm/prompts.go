package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// parseSystemPrompt instructs the model to transcribe dance notation into
// the call-list JSON the pipeline consumes.
const parseSystemPrompt = `You are a contra dance choreography transcriber.
You convert written contra dance notation into structured JSON.

The dance is performed by a single "hands four": two couples, each a lark
and a robin. Figure names must be snake_case (e.g. "allemande_right",
"do_si_do", "robins_chain", "box_the_gnat", "petronella", "balance",
"circle_left", "star_right", "pull_by_right", "swing").

Participants are relationship references, one or more of: "partners",
"neighbors", "opposites", "larks", "robins", "all".

Beats are cumulative from 0. A full contra dance (A1 A2 B1 B2) is 64 beats,
16 per section.

Respond with ONLY a JSON object of this exact shape, no prose:
{
  "formation": "improper" | "beckett",
  "calls": [
    {
      "name": "figure_name",
      "beat_start": 0,
      "beat_end": 8,
      "participants": ["neighbors"],
      "params": {},
      "raw_text": "the notation line this call came from"
    }
  ]
}

Optional params by figure: "turns" (allemande, circle, star, do_si_do),
"revolutions" (swing). Leave "params" empty when the notation does not
specify them. Calls that happen at the same time must share the same
beat_start and beat_end and be adjacent in the list.`

// endFormationSystemPrompt instructs the model to pick where a swing ends.
const endFormationSystemPrompt = `You are a contra dance choreographer.
Given the full call list of a dance and one swing within it, decide where
the swinging couple ends: the facing direction (degrees, 0 = up the set,
90 = east/right, 180 = down, 270 = west/left) and the couple's midpoint
[x, y] in set coordinates. Dancers stand 0.5 units from the set's center
line; a swing conventionally ends with the couple side by side facing
across or along the set, ready for the next figure.

Respond with ONLY a JSON object, no prose:
{"target_facing": 90, "end_center": [0.0, 0.5]}`

// buildParsePrompt wraps raw notation for transcription.
func buildParsePrompt(notation string) string {
	return fmt.Sprintf("Transcribe this contra dance:\n\n%s", notation)
}

// buildEndFormationPrompt describes one swing in the context of the whole
// call list.
func buildEndFormationPrompt(calls []dance.FigureCall, index int) string {
	var b strings.Builder
	b.WriteString("Full call list:\n")
	for i, c := range calls {
		marker := " "
		if i == index {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s %2d. beats %g-%g: %s %v\n",
			marker, i, c.BeatStart, c.BeatEnd, c.Name, c.Participants)
	}
	fmt.Fprintf(&b, "\nDetermine the end formation for the marked swing (call %d).\n", index)
	return b.String()
}

// stripCodeFences removes a surrounding markdown code fence, if present,
// and returns the trimmed inner text. Models often wrap JSON in fences
// despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		// Drop the language tag on the opening fence line.
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// decodeJSON is a strict unmarshal with a uniform error wrap.
func decodeJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), v); err != nil {
		return fmt.Errorf("llm: decode model response: %w", err)
	}
	return nil
}
