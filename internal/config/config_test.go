package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("speed:\n  base: 6\n  max: 9\ncollision:\n  inset: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Speed.Base != 6 || cfg.Speed.Max != 9 || cfg.Collision.Inset != 3 {
		t.Errorf("overrides not applied: %+v", cfg.Speed)
	}
	if cfg.Speed.StepEvery != 100 || cfg.Player.Width != 40 {
		t.Error("unset keys should keep their defaults")
	}
	if len(cfg.Obstacles) != 2 {
		t.Errorf("expected default obstacle kinds, got %d", len(cfg.Obstacles))
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  base: 5\n  max: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero world", func(c *RunnerConfig) { c.World.Width = 0 }},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpVelocity = 3 }},
		{"max below base", func(c *RunnerConfig) { c.Speed.Max = 1 }},
		{"no kinds", func(c *RunnerConfig) { c.Obstacles = nil }},
		{"kind without message", func(c *RunnerConfig) { c.Obstacles[0].Message = "" }},
		{"chance above one", func(c *RunnerConfig) { c.Spawn.Chance = 1.5 }},
		{"negative inset", func(c *RunnerConfig) { c.Collision.Inset = -1 }},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	normal := DefaultRunnerConfig()
	ApplyRunnerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultRunnerConfig()) {
		t.Error("normal preset must not change the config")
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	p := NewPacing(fixed)
	if p.Speed(0) != p.Speed(5000) {
		t.Error("fixed preset should hold speed constant")
	}

	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}
	if d, _ := ParseDifficulty(""); d != DifficultyNormal {
		t.Errorf("empty difficulty = %q, expected normal", d)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FOLIO_RUNNER_FPS", "30")
	t.Setenv("FOLIO_RUNNER_WS_ADDR", ":9000")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if e.FPS != 30 || e.WSAddr != ":9000" {
		t.Errorf("env not applied: %+v", e)
	}
	if e.SSHAddr != ":23234" || e.LogLevel != "info" {
		t.Errorf("defaults not applied: %+v", e)
	}

	t.Setenv("FOLIO_RUNNER_FPS", "fast")
	if _, err := LoadEnv(); err == nil {
		t.Error("non-numeric FPS should fail")
	}
}
