// Package sanity runs read-only, warning-only sweeps over a finished
// keyframe sequence. Contra dance has few hard rules, so every violation is
// reported as a warning string and never stops a run.
package sanity

import (
	"fmt"
	"math"

	"github.com/dusk-indust/contraviz/internal/dance"
)

// Config holds the check thresholds.
type Config struct {
	// MinDistance is the closest any two dancers may come, in set units.
	MinDistance float64 `yaml:"min_distance"`
	// MaxSpeed is the fastest allowed travel, in units per beat.
	MaxSpeed float64 `yaml:"max_speed"`
	// MaxSpin is the fastest allowed facing change, in degrees per beat.
	MaxSpin float64 `yaml:"max_spin"`
	// Tolerance bounds the progression displacement error.
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinDistance: 0.3,
		MaxSpeed:    1.0,
		MaxSpin:     180.0,
		Tolerance:   0.15,
	}
}

// RunAll runs the proximity, speed, and spin sweeps over a sequence.
// Progression is checked separately because it needs the start state.
func RunAll(frames []dance.Keyframe, cfg Config) []string {
	var warnings []string
	warnings = append(warnings, CheckProximity(frames, cfg.MinDistance)...)
	warnings = append(warnings, CheckSpeed(frames, cfg.MaxSpeed)...)
	warnings = append(warnings, CheckSpin(frames, cfg.MaxSpin)...)
	return warnings
}

// CheckProximity warns once per violating pair per frame when two dancers
// come closer than minDistance.
func CheckProximity(frames []dance.Keyframe, minDistance float64) []string {
	var warnings []string
	order := dance.AllDancers()
	for _, kf := range frames {
		for i := 0; i < len(order); i++ {
			for j := i + 1; j < len(order); j++ {
				a, okA := kf.Dancers[order[i]]
				b, okB := kf.Dancers[order[j]]
				if !okA || !okB {
					continue
				}
				if d := dance.Distance(a, b); d < minDistance {
					warnings = append(warnings, fmt.Sprintf(
						"beat %.1f: %s and %s are %.2f apart (< %.2f)",
						kf.Beat, order[i], order[j], d, minDistance))
				}
			}
		}
	}
	return warnings
}

// CheckSpeed warns when a dancer's displacement between consecutive frames
// exceeds maxSpeed units per beat.
func CheckSpeed(frames []dance.Keyframe, maxSpeed float64) []string {
	var warnings []string
	for i := 1; i < len(frames); i++ {
		dt := frames[i].Beat - frames[i-1].Beat
		if dt <= 0 {
			continue
		}
		for _, did := range dance.AllDancers() {
			prev := frames[i-1].Dancers[did]
			curr := frames[i].Dancers[did]
			if speed := dance.Distance(prev, curr) / dt; speed > maxSpeed {
				warnings = append(warnings, fmt.Sprintf(
					"beat %.1f: %s moving at %.2f/beat (> %.2f)",
					frames[i].Beat, did, speed, maxSpeed))
			}
		}
	}
	return warnings
}

// CheckSpin warns when a dancer's shortest-arc facing change between
// consecutive frames exceeds maxSpin degrees per beat.
func CheckSpin(frames []dance.Keyframe, maxSpin float64) []string {
	var warnings []string
	for i := 1; i < len(frames); i++ {
		dt := frames[i].Beat - frames[i-1].Beat
		if dt <= 0 {
			continue
		}
		for _, did := range dance.AllDancers() {
			prev := frames[i-1].Dancers[did].Facing
			curr := frames[i].Dancers[did].Facing
			diff := math.Abs(math.Mod(math.Mod(curr-prev+180, 360)+360, 360) - 180)
			if rate := diff / dt; rate > maxSpin {
				warnings = append(warnings, fmt.Sprintf(
					"beat %.1f: %s spinning at %.0f°/beat (> %.0f°/beat)",
					frames[i].Beat, did, rate, maxSpin))
			}
		}
	}
	return warnings
}

// CheckProgression verifies that each dancer's net displacement over the
// timeline matches the expected longitudinal progression: up dancers move
// up the set (positive y), down dancers move down, and lateral drift stays
// near zero. Only meaningful once the timeline spans a full 64-beat cycle.
func CheckProgression(start, end *dance.WorldState, expected, tolerance float64) []string {
	var warnings []string
	for _, did := range dance.AllDancers() {
		s := start.Dancers[did]
		e := end.Dancers[did]
		dy := e.Y - s.Y
		dx := math.Abs(e.X - s.X)

		expectedY := expected
		if did.IsDown() {
			expectedY = -expected
		}

		if math.Abs(dy-expectedY) > tolerance {
			warnings = append(warnings, fmt.Sprintf(
				"progression: %s displaced by (%.2f, %.2f), expected (0, %.1f)",
				did, dx, dy, expectedY))
		}
		if dx > tolerance {
			warnings = append(warnings, fmt.Sprintf(
				"progression: %s drifted %.2f laterally (expected ~0)", did, dx))
		}
	}
	return warnings
}
