package config

import "math"

// Pacing turns the score into game speed and spawn cadence.
// All curves are step functions of score so they never decrease speed.
type Pacing struct {
	speed SpeedConfig
	spawn SpawnConfig
	goal  GoalConfig
}

// NewPacing creates pacing curves for the given config.
func NewPacing(cfg RunnerConfig) *Pacing {
	return &Pacing{
		speed: cfg.Speed,
		spawn: cfg.Spawn,
		goal:  cfg.Goal,
	}
}

// Speed returns base + floor(score/stepEvery) * increment, capped at max.
func (p *Pacing) Speed(score int) float64 {
	if score < 0 || p.speed.StepEvery <= 0 {
		return math.Min(p.speed.Base, p.speed.Max)
	}
	steps := float64(score / p.speed.StepEvery)
	return math.Min(p.speed.Base+steps*p.speed.StepIncrement, p.speed.Max)
}

// MaxSpeed returns the speed cap.
func (p *Pacing) MaxSpeed() float64 {
	return p.speed.Max
}

// SpawnInterval returns the ticks between spawn attempts, shrinking as
// score grows and floored at the minimum interval.
func (p *Pacing) SpawnInterval(score int) int {
	interval := p.spawn.BaseInterval
	if score > 0 && p.spawn.ShrinkEvery > 0 {
		interval -= (score / p.spawn.ShrinkEvery) * p.spawn.ShrinkBy
	}
	return max(interval, p.spawn.MinInterval)
}

// SpawnChance returns the probability that a due spawn attempt succeeds.
func (p *Pacing) SpawnChance() float64 {
	return p.spawn.Chance
}

// SpawnAllowed reports whether obstacles may still appear. Spawning stops
// shortly before the goal so the finish stretch is clear.
func (p *Pacing) SpawnAllowed(score int) bool {
	return score < p.spawn.CutoffScore
}

// GoalRevealed reports whether the finish flag should be on screen.
func (p *Pacing) GoalRevealed(score int) bool {
	return score >= p.goal.RevealScore
}
