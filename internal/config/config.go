// Package config provides YAML-based runner configuration, environment
// overrides and the pacing curves derived from them.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all tunables of the runner engine.
type RunnerConfig struct {
	World     WorldConfig          `yaml:"world"`
	Physics   PhysicsConfig        `yaml:"physics"`
	Player    PlayerConfig         `yaml:"player"`
	Speed     SpeedConfig          `yaml:"speed"`
	Spawn     SpawnConfig          `yaml:"spawn"`
	Obstacles []ObstacleKindConfig `yaml:"obstacles"`
	Goal      GoalConfig           `yaml:"goal"`
	Collision CollisionConfig      `yaml:"collision"`
	Scenery   SceneryConfig        `yaml:"scenery"`
}

// WorldConfig is the fixed logical resolution of the play field.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // y of the ground line; player feet rest here
}

// PhysicsConfig defines per-tick vertical motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative = upward
}

// PlayerConfig defines the runner's fixed box and animation cycle.
type PlayerConfig struct {
	X        float64 `yaml:"x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	RunCycle int     `yaml:"run_cycle"` // ticks per running animation loop
}

// SpeedConfig defines the score-driven speed step function.
type SpeedConfig struct {
	Base          float64 `yaml:"base"`
	StepEvery     int     `yaml:"step_every"` // score points per speed step
	StepIncrement float64 `yaml:"step_increment"`
	Max           float64 `yaml:"max"`
}

// SpawnConfig defines obstacle cadence.
type SpawnConfig struct {
	BaseInterval int     `yaml:"base_interval"` // ticks between spawn attempts at score 0
	MinInterval  int     `yaml:"min_interval"`
	ShrinkEvery  int     `yaml:"shrink_every"` // score points per interval reduction
	ShrinkBy     int     `yaml:"shrink_by"`
	Chance       float64 `yaml:"chance"`       // probability an attempt spawns
	CutoffScore  int     `yaml:"cutoff_score"` // no spawns at or past this score
}

// ObstacleKindConfig describes one obstacle category.
type ObstacleKindConfig struct {
	Name    string  `yaml:"name"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Glyph   string  `yaml:"glyph"`
	Color   string  `yaml:"color"`
	Message string  `yaml:"message"`
	Weight  int     `yaml:"weight"`
}

// GoalConfig describes the finish flag.
type GoalConfig struct {
	RevealScore int     `yaml:"reveal_score"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpeedFactor float64 `yaml:"speed_factor"` // fraction of game speed the flag scrolls at
}

// CollisionConfig holds the forgiving-hitbox margin.
type CollisionConfig struct {
	Inset float64 `yaml:"inset"`
}

// SceneryConfig controls purely cosmetic background elements.
type SceneryConfig struct {
	Stars             int     `yaml:"stars"`
	GroundMarkSpacing float64 `yaml:"ground_mark_spacing"`
}

// Validate checks the config for values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return invalid("world size must be positive")
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.Height:
		return invalid("ground_y %.1f outside world", c.World.GroundY)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player size must be positive")
	case c.Player.Height > c.World.GroundY:
		return invalid("player taller than the space above ground")
	case c.Player.RunCycle <= 0:
		return invalid("run_cycle must be positive")
	case c.Physics.Gravity <= 0:
		return invalid("gravity must be positive")
	case c.Physics.JumpVelocity >= 0:
		return invalid("jump_velocity must be negative")
	case c.Speed.Base <= 0:
		return invalid("base speed must be positive")
	case c.Speed.Max < c.Speed.Base:
		return invalid("max speed %.1f below base %.1f", c.Speed.Max, c.Speed.Base)
	case c.Speed.StepIncrement < 0:
		return invalid("step_increment must not be negative")
	case c.Spawn.MinInterval <= 0 || c.Spawn.BaseInterval < c.Spawn.MinInterval:
		return invalid("spawn intervals must satisfy 0 < min <= base")
	case c.Spawn.Chance < 0 || c.Spawn.Chance > 1:
		return invalid("spawn chance must be within [0, 1]")
	case len(c.Obstacles) == 0:
		return invalid("at least one obstacle kind is required")
	case c.Goal.SpeedFactor <= 0:
		return invalid("goal speed_factor must be positive")
	case c.Collision.Inset < 0:
		return invalid("collision inset must not be negative")
	}

	for _, k := range c.Obstacles {
		if k.Name == "" || k.Width <= 0 || k.Height <= 0 || k.Weight <= 0 {
			return invalid("obstacle kind %q needs a name, positive size and weight", k.Name)
		}
		if k.Message == "" {
			return invalid("obstacle kind %q needs a failure message", k.Name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}
