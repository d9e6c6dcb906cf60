// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings the CLI reads from a YAML file.
type Config struct {
	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`

	// DefaultChecker is used by commands when no --checker flag is given.
	DefaultChecker string `yaml:"default_checker"`

	// SuppressFile is handed to the suppression store as its configured
	// location. The built-in store keeps everything in memory; the path is
	// carried for backends that persist.
	SuppressFile string `yaml:"suppress_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
