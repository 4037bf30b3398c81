// Package config loads project-level settings from contraviz.yml.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from contraviz.yml.
type ProjectConfig struct {
	// Formation names the starting arrangement ("improper" or "beckett").
	Formation string `yaml:"formation,omitempty"`
	// Progression is the per-cycle travel distance in set units.
	Progression float64 `yaml:"progression,omitempty"`
	// BeatsPerFrame overrides the keyframe sampling interval.
	BeatsPerFrame float64 `yaml:"beatsPerFrame,omitempty"`
	// Model names the language model used to parse dance notation.
	Model string `yaml:"model,omitempty"`
	// OutputDir is where rendered animations are written.
	OutputDir string `yaml:"outputDir,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
	// Sanity overrides the post-run check thresholds.
	Sanity SanityConfig `yaml:"sanity,omitempty"`
}

// SanityConfig mirrors the check thresholds in yaml form. Zero values mean
// "use the default".
type SanityConfig struct {
	MinDistance float64 `yaml:"minDistance,omitempty"`
	MaxSpeed    float64 `yaml:"maxSpeed,omitempty"`
	MaxSpin     float64 `yaml:"maxSpin,omitempty"`
	Tolerance   float64 `yaml:"tolerance,omitempty"`
}

// Load attempts to read contraviz.yml or contraviz.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"contraviz.yml", "contraviz.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
