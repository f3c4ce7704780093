package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all library configuration.
type Config struct {
	Rolling RollingConfig
	Logging LogConfig
}

// RollingConfig holds batch-driver and engine configuration.
type RollingConfig struct {
	// Workers caps the row fan-out; 0 uses one worker per CPU.
	Workers int `envconfig:"SIGFEAT_WORKERS" default:"0"`
	// Exact forces per-window re-summation instead of the incremental
	// slide, trading speed for accuracy on cancellation-prone data.
	Exact bool `envconfig:"SIGFEAT_EXACT" default:"false"`
	// ExactMaxLag enables exact mode automatically for windows of at most
	// this many samples; 0 disables the threshold.
	ExactMaxLag int `envconfig:"SIGFEAT_EXACT_MAX_LAG" default:"0"`
	// MaxOutputElems bounds the total float64 elements one call may
	// allocate across all output arrays; 0 means unbounded.
	MaxOutputElems int64 `envconfig:"SIGFEAT_MAX_OUTPUT_ELEMS" default:"0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"SIGFEAT_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SIGFEAT_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Rolling: RollingConfig{
			Workers:        0,
			Exact:          false,
			ExactMaxLag:    0,
			MaxOutputElems: 0,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
