package export

import (
	"fmt"
	"strings"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// GenerateMermaid produces a Mermaid graph TD diagram of the call sequence.
// Calls sharing a beat window are grouped into a subgraph; arrows follow the
// beat order.
func GenerateMermaid(calls []dance.FigureCall) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	groups := groupByWindow(calls)
	nodeID := 0
	var prevGroup []string

	for gi, group := range groups {
		var ids []string
		emit := func(c dance.FigureCall) {
			id := fmt.Sprintf("C%d", nodeID)
			nodeID++
			label := fmt.Sprintf("%s %g-%g", c.Name, c.BeatStart, c.BeatEnd)
			if len(c.Participants) > 0 {
				label += " (" + strings.Join(c.Participants, ", ") + ")"
			}
			sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, label))
			ids = append(ids, id)
		}

		if len(group) > 1 {
			sb.WriteString(fmt.Sprintf("  subgraph G%d[\"beats %g-%g\"]\n", gi, group[0].BeatStart, group[0].BeatEnd))
			for _, c := range group {
				emit(c)
			}
			sb.WriteString("  end\n")
		} else {
			emit(group[0])
		}

		for _, from := range prevGroup {
			for _, to := range ids {
				sb.WriteString(fmt.Sprintf("  %s --> %s\n", from, to))
			}
		}
		prevGroup = ids
	}

	return sb.String()
}

// groupByWindow splits calls into runs of consecutive calls sharing the
// exact same beat window.
func groupByWindow(calls []dance.FigureCall) [][]dance.FigureCall {
	var groups [][]dance.FigureCall
	for i := 0; i < len(calls); {
		j := i + 1
		for j < len(calls) && calls[j].BeatStart == calls[i].BeatStart && calls[j].BeatEnd == calls[i].BeatEnd {
			j++
		}
		groups = append(groups, calls[i:j])
		i = j
	}
	return groups
}
