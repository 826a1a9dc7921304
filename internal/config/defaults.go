package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/runner.yaml and is used if the embed cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  250,
			GroundY: 220,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpVelocity: -12,
		},
		Player: PlayerConfig{
			X:        80,
			Width:    40,
			Height:   44,
			RunCycle: 20,
		},
		Speed: SpeedConfig{
			Base:          5,
			StepEvery:     100,
			StepIncrement: 0.5,
			Max:           12,
		},
		Spawn: SpawnConfig{
			BaseInterval: 100,
			MinInterval:  45,
			ShrinkEvery:  50,
			ShrinkBy:     5,
			Chance:       0.65,
			CutoffScore:  900,
		},
		Obstacles: []ObstacleKindConfig{
			{
				Name:    "bug",
				Width:   30,
				Height:  30,
				Glyph:   "✱",
				Color:   "red",
				Message: "A bug crashed the build.",
				Weight:  3,
			},
			{
				Name:    "fire",
				Width:   26,
				Height:  44,
				Glyph:   "▲",
				Color:   "orange",
				Message: "Production caught fire.",
				Weight:  2,
			},
		},
		Goal: GoalConfig{
			RevealScore: 950,
			Width:       34,
			Height:      60,
			SpeedFactor: 0.5,
		},
		Collision: CollisionConfig{
			Inset: 5,
		},
		Scenery: SceneryConfig{
			Stars:             30,
			GroundMarkSpacing: 40,
		},
	}
}

// DefaultYAML returns the embedded default config, for `runner config`
// style dumps and for users to copy as a starting point.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
