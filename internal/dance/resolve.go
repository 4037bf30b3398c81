package dance

import (
	"fmt"
	"strings"
)

// Pair is an ordered pair of dancers interacting in a figure.
type Pair [2]DancerID

// UnknownReferenceError signals a relational participant token that the
// resolver does not recognize. The orchestrator downgrades it to a warning.
type UnknownReferenceError struct {
	Reference string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown relationship reference %q", e.Reference)
}

// ResolveReference maps a case-insensitive relational token to concrete
// dancer pairs using the fixed hands-four topology. Resolution is pure: it
// never depends on current positions.
func ResolveReference(reference string) ([]Pair, error) {
	switch strings.ToLower(strings.TrimSpace(reference)) {
	case "partner", "partners":
		return []Pair{
			{UpLark, UpRobin},
			{DownLark, DownRobin},
		}, nil
	case "neighbor", "neighbors":
		return []Pair{
			{UpLark, DownRobin},
			{UpRobin, DownLark},
		}, nil
	case "opposite", "opposites":
		return []Pair{
			{UpLark, DownLark},
			{UpRobin, DownRobin},
		}, nil
	case "lark", "larks", "gentlespoon", "gentlespoons":
		return []Pair{{UpLark, DownLark}}, nil
	case "robin", "robins", "ladle", "ladles":
		return []Pair{{UpRobin, DownRobin}}, nil
	case "all", "everyone":
		// The four adjacency relations needed to move every dancer.
		return []Pair{
			{UpLark, UpRobin},
			{DownLark, DownRobin},
			{UpLark, DownRobin},
			{UpRobin, DownLark},
		}, nil
	}
	return nil, &UnknownReferenceError{Reference: reference}
}
