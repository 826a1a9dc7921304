package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and host keys.
const AppDir = ".folio-runner"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.folio-runner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Broken optional files fall through to the next candidate.
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// parseRunner overlays YAML onto the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ApplyRunnerPreset adjusts speed for a difficulty preset.
// Normal leaves the configured values untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 4
		cfg.Speed.Max = 10
	case DifficultyHard:
		cfg.Speed.Base = 6
		cfg.Speed.Max = 14
	case DifficultyFixed:
		cfg.Speed.StepIncrement = 0
		cfg.Speed.Max = cfg.Speed.Base
	}
}
