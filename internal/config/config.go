// Package config loads the static, load-time world parameters (world
// extent, noise shaping, generation mode) from YAML, merging a user
// file over embedded defaults the way pthm-soup's config package does.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the static parameters needed to stand up a world.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Noise     NoiseConfig     `yaml:"noise"`
	Generator GeneratorConfig `yaml:"generator"`
}

// WorldConfig is the voxel grid extent.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Depth  int `yaml:"depth"`
}

// NoiseConfig parameterizes the FBM noise adapter.
type NoiseConfig struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// GeneratorConfig selects the terrain shaping function.
type GeneratorConfig struct {
	Mode string `yaml:"mode"` // "default" or "sphere"
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}
