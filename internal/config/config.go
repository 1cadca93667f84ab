// Package config provides configuration loading for the swiftreader host
// CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the host CLI.
type Config struct {
	Debug bool        `yaml:"debug"`
	Guest GuestConfig `yaml:"guest"`
}

// GuestConfig holds settings for the embedded guest module.
type GuestConfig struct {
	// ModulePath is the compiled wasip1 guest binary. When empty the
	// CLI runs the operations natively instead of through the guest.
	ModulePath string `yaml:"module_path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a yaml config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Guest.ModulePath != "" {
		if _, err := os.Stat(c.Guest.ModulePath); err != nil {
			return fmt.Errorf("guest module_path: %w", err)
		}
	}
	return nil
}
