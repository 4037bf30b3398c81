package dance

import "fmt"

// Formation names a hardcoded starting layout for the hands-four.
type Formation string

const (
	FormationImproper Formation = "improper"
	FormationBeckett  Formation = "beckett"
)

// ParseFormation converts a selector string into a Formation.
func ParseFormation(s string) (Formation, error) {
	switch Formation(s) {
	case FormationImproper, FormationBeckett:
		return Formation(s), nil
	}
	return "", fmt.Errorf("unknown formation %q", s)
}

// MakeFormation creates the world state for a starting formation at the
// given beat.
func MakeFormation(f Formation, beat float64) (*WorldState, error) {
	switch f {
	case FormationImproper:
		return improper(beat), nil
	case FormationBeckett:
		return beckett(beat), nil
	}
	return nil, fmt.Errorf("unknown formation %q", f)
}

// improper: hands-four centered at y=0. Down dancers at y=+0.5 facing 180°
// (south), up dancers at y=-0.5 facing 0° (north). Larks stand on the left
// of their pair relative to their facing.
func improper(beat float64) *WorldState {
	return &WorldState{
		Beat: beat,
		Dancers: map[DancerID]Pose{
			DownLark:  {X: 0.5, Y: 0.5, Facing: 180.0},
			DownRobin: {X: -0.5, Y: 0.5, Facing: 180.0},
			UpRobin:   {X: 0.5, Y: -0.5, Facing: 0.0},
			UpLark:    {X: -0.5, Y: -0.5, Facing: 0.0},
		},
	}
}

// beckett: improper rotated 90° clockwise, everyone facing across the set.
func beckett(beat float64) *WorldState {
	return &WorldState{
		Beat: beat,
		Dancers: map[DancerID]Pose{
			DownLark:  {X: -0.5, Y: 0.5, Facing: 90.0},
			DownRobin: {X: -0.5, Y: -0.5, Facing: 90.0},
			UpRobin:   {X: 0.5, Y: 0.5, Facing: 270.0},
			UpLark:    {X: 0.5, Y: -0.5, Facing: 270.0},
		},
	}
}
