package config

import (
	"fmt"
	"os"

	automaton "github.com/geange/automaton-tree"
	"gopkg.in/yaml.v3"
)

// Config is the structure of automaton-tree.yaml.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LimitsConfig bounds the work a single simulation may do.
type LimitsConfig struct {
	MaxInputLength int `yaml:"max_input_length"`
	MaxNodes       int `yaml:"max_nodes"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
		Limits: LimitsConfig{
			MaxInputLength: automaton.DefaultMaxInputLength,
			MaxNodes:       automaton.DefaultMaxNodes,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults.
// A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects negative limits.
func (c Config) Validate() error {
	if c.Limits.MaxInputLength < 0 {
		return fmt.Errorf("limits.max_input_length must not be negative, got %d", c.Limits.MaxInputLength)
	}
	if c.Limits.MaxNodes < 0 {
		return fmt.Errorf("limits.max_nodes must not be negative, got %d", c.Limits.MaxNodes)
	}
	return nil
}
