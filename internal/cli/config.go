package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the TOML-file defaults merged under command flags. Any
// flag set explicitly on the command line overrides its config value.
type Config struct {
	// StoreIDs keeps original node and edge ids when reading documents.
	StoreIDs bool `toml:"store-ids"`

	Gen    GenConfig    `toml:"gen"`
	Render RenderConfig `toml:"render"`
}

// GenConfig carries defaults for the gen command.
type GenConfig struct {
	Vertices int    `toml:"vertices"`
	Seed     int64  `toml:"seed"`
	Weights  string `toml:"weights"`
	Directed bool   `toml:"directed"`
}

// RenderConfig carries defaults for the render and convert commands'
// DOT shaping flags.
type RenderConfig struct {
	Label      string `toml:"label"`
	Properties bool   `toml:"properties"`
}

func defaultConfig() *Config {
	return &Config{
		Gen: GenConfig{Vertices: 8, Seed: 1},
	}
}

// loadConfig reads path over the built-in defaults. An empty path keeps
// the defaults untouched.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
