package dance

// Pose is one dancer's position and orientation at an instant. Facing is in
// degrees, normalized to [0,360): 0=up/north, 90=east, 180=down, 270=west.
// Pose is a value type; storing one in a map or Keyframe copies it.
type Pose struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Facing float64 `json:"facing"`
	VX     float64 `json:"vx,omitempty"`
	VY     float64 `json:"vy,omitempty"`
}

// HandLink records a grip between two dancers. It is descriptive only; no
// physical constraint is enforced.
type HandLink struct {
	A     DancerID `json:"a"`
	HandA Hand     `json:"hand_a"`
	B     DancerID `json:"b"`
	HandB Hand     `json:"hand_b"`
}

// WorldState is a full snapshot of the set at one beat. Snapshots handed to
// figure generators are treated as immutable start states; the orchestrator's
// running copy is the only instance that mutates.
type WorldState struct {
	Beat    float64           `json:"beat"`
	Dancers map[DancerID]Pose `json:"dancers"`
	Hands   []HandLink        `json:"hands,omitempty"`
}

// Clone returns a deep copy of the world state.
func (w *WorldState) Clone() *WorldState {
	dancers := make(map[DancerID]Pose, len(w.Dancers))
	for did, p := range w.Dancers {
		dancers[did] = p
	}
	hands := make([]HandLink, len(w.Hands))
	copy(hands, w.Hands)
	return &WorldState{Beat: w.Beat, Dancers: dancers, Hands: hands}
}

// Keyframe is one rendered instant: every dancer's pose (always all four,
// even when unchanged), the active hand links, and an optional annotation.
type Keyframe struct {
	Beat       float64           `json:"beat"`
	Dancers    map[DancerID]Pose `json:"dancers"`
	Hands      []HandLink        `json:"hands,omitempty"`
	Annotation string            `json:"annotation,omitempty"`
}

// FigureCall is one move invocation as produced by the upstream parser.
type FigureCall struct {
	Name         string         `json:"name"`
	BeatStart    float64        `json:"beat_start"`
	BeatEnd      float64        `json:"beat_end"`
	Participants []string       `json:"participants"`
	Params       map[string]any `json:"params,omitempty"`
	RawText      string         `json:"raw_text,omitempty"`
}

// Duration is the call's beat span.
func (c FigureCall) Duration() float64 {
	return c.BeatEnd - c.BeatStart
}

// FigureResult is what one figure invocation produced: the sampled keyframes,
// the world state at beat_end, and any warnings.
type FigureResult struct {
	Keyframes []Keyframe
	End       *WorldState
	Warnings  []string
}
