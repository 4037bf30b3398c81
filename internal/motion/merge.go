package motion

import (
	"math"
	"sort"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// beatEpsilon deduplicates near-identical float beats across sequences.
const beatEpsilon = 1e-6

// Sequence pairs a keyframe list with the set of dancers whose poses it is
// trusted to define when merging concurrent sequences.
type Sequence struct {
	Frames []dance.Keyframe
	Owns   map[dance.DancerID]bool
}

// Merge combines concurrent keyframe sequences covering the same beat range
// into one. The merged timeline is the union of all input beats (rounded to
// beatEpsilon); at each beat the frame starts from the first sequence's full
// pose mapping, then each sequence in order overlays only the dancers it
// owns, interpolating between its bracketing frames when its grid lacks that
// beat. Hand links are unioned and deduplicated by grip identity, keeping
// the first occurrence. A single-input list is returned unchanged.
func Merge(inputs []Sequence) []dance.Keyframe {
	if len(inputs) == 0 {
		return nil
	}
	if len(inputs) == 1 {
		return inputs[0].Frames
	}

	beatSet := make(map[float64]bool)
	for _, in := range inputs {
		for _, kf := range in.Frames {
			beatSet[roundBeat(kf.Beat)] = true
		}
	}
	beats := make([]float64, 0, len(beatSet))
	for b := range beatSet {
		beats = append(beats, b)
	}
	sort.Float64s(beats)

	merged := make([]dance.Keyframe, 0, len(beats))
	for _, beat := range beats {
		base, ok := frameAt(beat, inputs[0].Frames)
		if !ok {
			continue
		}

		dancers := make(map[dance.DancerID]dance.Pose, len(base.Dancers))
		for did, p := range base.Dancers {
			dancers[did] = p
		}
		hands := append([]dance.HandLink(nil), base.Hands...)

		for _, in := range inputs {
			frame, ok := frameAt(beat, in.Frames)
			if !ok {
				continue
			}
			for did := range in.Owns {
				if p, ok := frame.Dancers[did]; ok {
					dancers[did] = p
				}
			}
			hands = append(hands, frame.Hands...)
		}

		merged = append(merged, dance.Keyframe{
			Beat:    beat,
			Dancers: dancers,
			Hands:   dedupeHands(hands),
		})
	}

	return merged
}

// frameAt returns the sequence's frame at the given beat: exact if present,
// otherwise linearly interpolated between the two bracketing frames found by
// binary search. Returns false only for an empty sequence.
func frameAt(beat float64, frames []dance.Keyframe) (dance.Keyframe, bool) {
	if len(frames) == 0 {
		return dance.Keyframe{}, false
	}

	// Binary search for the first frame at or after the beat.
	i := sort.Search(len(frames), func(i int) bool {
		return roundBeat(frames[i].Beat) >= beat
	})
	if i < len(frames) && roundBeat(frames[i].Beat) == beat {
		return frames[i], true
	}
	if i == 0 {
		return frames[0], true
	}
	if i == len(frames) {
		return frames[len(frames)-1], true
	}

	f0, f1 := frames[i-1], frames[i]
	dt := f1.Beat - f0.Beat
	if dt <= 0 {
		return f0, true
	}
	t := (beat - f0.Beat) / dt

	dancers := make(map[dance.DancerID]dance.Pose, len(f0.Dancers))
	for did, p0 := range f0.Dancers {
		p1 := f1.Dancers[did]
		dancers[did] = dance.Pose{
			X:      Lerp(p0.X, p1.X, t),
			Y:      Lerp(p0.Y, p1.Y, t),
			Facing: LerpFacing(p0.Facing, p1.Facing, t),
		}
	}

	return dance.Keyframe{Beat: beat, Dancers: dancers, Hands: f0.Hands}, true
}

// dedupeHands drops repeated grips, keeping the first occurrence of each
// (dancer, hand, dancer, hand) identity.
func dedupeHands(hands []dance.HandLink) []dance.HandLink {
	if len(hands) == 0 {
		return nil
	}
	seen := make(map[dance.HandLink]bool, len(hands))
	unique := make([]dance.HandLink, 0, len(hands))
	for _, h := range hands {
		if !seen[h] {
			seen[h] = true
			unique = append(unique, h)
		}
	}
	return unique
}

func roundBeat(b float64) float64 {
	return math.Round(b/beatEpsilon) * beatEpsilon
}
