package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Launch defaults
const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 640
)

// Config holds launch options read from the environment
type Config struct {
	WindowWidth  float32 `env:"DIGITSPAN_WINDOW_WIDTH"  envDefault:"960"`
	WindowHeight float32 `env:"DIGITSPAN_WINDOW_HEIGHT" envDefault:"640"`
	// Seed fixes sequence generation; 0 means seed from the clock
	Seed  uint64 `env:"DIGITSPAN_SEED"  envDefault:"0"`
	Debug bool   `env:"DIGITSPAN_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfigFromEnv returns launch configuration with defaults applied.
// A malformed environment falls back to defaults with the error returned
// for logging.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = DefaultWindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = DefaultWindowHeight
	}
	return cfg, nil
}

// DefaultConfig returns the built-in launch configuration
func DefaultConfig() Config {
	return Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}
