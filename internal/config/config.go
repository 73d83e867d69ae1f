// Package config loads application configuration from an optional HCL file
// with environment variable overrides. Everything has a default so the CLI
// works with no configuration at all.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the application configuration.
type Config struct {
	// DatabasePath is the SQLite database file location.
	DatabasePath string `hcl:"database_path,optional" env:"EKAN_DATABASE_PATH"`

	// LogLevel is the hclog level name (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional" env:"EKAN_LOG_LEVEL"`
}

// Default returns the zero-config defaults.
func Default() *Config {
	return &Config{
		DatabasePath: ".ekan/ekan.db",
		LogLevel:     "info",
	}
}

// NewConfig builds the configuration: defaults, then the HCL file at path if
// one is given, then environment overrides on top.
func NewConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		// DecodeFile zeroes optional attributes that are absent from the
		// file; restore defaults for anything left empty.
		applyDefaults(cfg)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaults.DatabasePath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}
