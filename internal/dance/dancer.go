// Package dance defines the core data model for the contra dance animator:
// dancer identities and their fixed relations, poses, hand connections,
// world snapshots, keyframes, and figure call/result types.
package dance

// DancerID identifies one of the four dancers in a hands-four.
type DancerID string

const (
	UpLark    DancerID = "up_lark"
	UpRobin   DancerID = "up_robin"
	DownLark  DancerID = "down_lark"
	DownRobin DancerID = "down_robin"
)

// AllDancers returns the four dancer identities in a stable order.
func AllDancers() []DancerID {
	return []DancerID{UpLark, UpRobin, DownLark, DownRobin}
}

// IsLark reports whether the dancer has the lark role.
func (d DancerID) IsLark() bool {
	return d == UpLark || d == DownLark
}

// IsRobin reports whether the dancer has the robin role.
func (d DancerID) IsRobin() bool {
	return !d.IsLark()
}

// IsUp reports whether the dancer is on the up side of the set.
func (d DancerID) IsUp() bool {
	return d == UpLark || d == UpRobin
}

// IsDown reports whether the dancer is on the down side of the set.
func (d DancerID) IsDown() bool {
	return !d.IsUp()
}

// Role returns "lark" or "robin".
func (d DancerID) Role() string {
	if d.IsLark() {
		return "lark"
	}
	return "robin"
}

// Side returns "up" or "down".
func (d DancerID) Side() string {
	if d.IsUp() {
		return "up"
	}
	return "down"
}

// Partner is the same-side dancer with the other role.
func (d DancerID) Partner() DancerID {
	switch d {
	case UpLark:
		return UpRobin
	case UpRobin:
		return UpLark
	case DownLark:
		return DownRobin
	default:
		return DownLark
	}
}

// Neighbor is the other-side dancer with the other role.
func (d DancerID) Neighbor() DancerID {
	switch d {
	case UpLark:
		return DownRobin
	case UpRobin:
		return DownLark
	case DownLark:
		return UpRobin
	default:
		return UpLark
	}
}

// Opposite is the other-side dancer with the same role.
func (d DancerID) Opposite() DancerID {
	return d.Neighbor().Partner()
}

// Hand identifies a dancer's left or right hand.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)
