package config

import (
	"strings"
	"testing"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WindowWidth != DefaultWindowWidth || cfg.WindowHeight != DefaultWindowHeight {
		t.Errorf("Expected default window %dx%d, got %vx%v",
			DefaultWindowWidth, DefaultWindowHeight, cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Seed != 0 || cfg.Debug {
		t.Errorf("Expected zero seed and no debug, got %+v", cfg)
	}
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("DIGITSPAN_WINDOW_WIDTH", "1280")
	t.Setenv("DIGITSPAN_WINDOW_HEIGHT", "720")
	t.Setenv("DIGITSPAN_SEED", "99")
	t.Setenv("DIGITSPAN_DEBUG", "true")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WindowWidth != 1280 || cfg.WindowHeight != 720 {
		t.Errorf("Expected 1280x720, got %vx%v", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
}

func TestLoadConfigFromEnvNonPositiveSize(t *testing.T) {
	t.Setenv("DIGITSPAN_WINDOW_WIDTH", "-5")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WindowWidth != DefaultWindowWidth {
		t.Errorf("Expected default width, got %v", cfg.WindowWidth)
	}
}

func TestLoadConfigFromEnvError(t *testing.T) {
	t.Setenv("DIGITSPAN_SEED", "not-a-number")

	cfg, err := LoadConfigFromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults on error, got %+v", cfg)
	}
}
