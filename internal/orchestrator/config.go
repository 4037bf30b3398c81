package orchestrator

import (
	"github.com/dusk-indust/contraviz/internal/dance"
	"github.com/dusk-indust/contraviz/internal/figures"
	"github.com/dusk-indust/contraviz/internal/sanity"
)

// Config controls a pipeline run.
type Config struct {
	// Formation is the starting arrangement of the four dancers.
	Formation dance.Formation `yaml:"formation"`
	// Progression is the longitudinal distance each couple travels per
	// 64-beat cycle, in set units.
	Progression float64 `yaml:"progression"`
	// BeatsPerFrame is the sampling interval for generated keyframes.
	BeatsPerFrame float64 `yaml:"beats_per_frame"`
	// Sanity holds the post-run check thresholds.
	Sanity sanity.Config `yaml:"sanity"`
}

// DefaultConfig returns the standard pipeline settings: improper formation,
// one-position progression, quarter-beat sampling.
func DefaultConfig() Config {
	return Config{
		Formation:     dance.FormationImproper,
		Progression:   1.0,
		BeatsPerFrame: figures.DefaultBeatsPerFrame,
		Sanity:        sanity.DefaultConfig(),
	}
}
