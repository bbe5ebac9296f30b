// Package config loads board settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the board's settings. Consumers either construct a Config in
// Go code or place a board.yaml next to the binary and pass its path in.
type Config struct {
	// Theme selects the glyph set: classic, neon, or mono.
	Theme string `yaml:"theme"`

	// MinPeople and MaxPeople bound the crew-size field on the intake form
	// (inclusive on both ends).
	MinPeople int `yaml:"min_people"`
	MaxPeople int `yaml:"max_people"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	return Config{
		Theme:     "classic",
		MinPeople: 1,
		MaxPeople: 10,
	}
}

// LoadFile reads a YAML config from path. A missing file is not an error:
// the defaults apply, same as an empty file would.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MinPeople < 1 {
		cfg.MinPeople = 1
	}
	if cfg.MaxPeople < cfg.MinPeople {
		cfg.MaxPeople = cfg.MinPeople
	}
	return cfg, nil
}
