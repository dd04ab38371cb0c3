package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds viewer settings loadable from a TOML file
type Config struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Scale    int    `toml:"scale"`
	MaxDepth int    `toml:"max_depth"`
	Scene    string `toml:"scene"` // Path to a JSON scene file; empty = built-in scene
}

// DefaultConfig returns the reference viewer settings
func DefaultConfig() Config {
	return Config{
		Width:    1024,
		Height:   768,
		Scale:    8,
		MaxDepth: 4,
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
