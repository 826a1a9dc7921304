package config

import "testing"

func TestPacingSpeedSteps(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	tests := []struct {
		score int
		speed float64
	}{
		{0, 5},
		{99, 5},
		{100, 5.5},
		{250, 6},
		{1400, 12},
		{100000, 12},
		{-10, 5},
	}
	for _, tc := range tests {
		if got := p.Speed(tc.score); got != tc.speed {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.speed)
		}
	}
}

func TestPacingSpeedMonotonicAndCapped(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())
	prev := p.Speed(0)
	for score := 1; score <= 5000; score++ {
		s := p.Speed(score)
		if s < prev {
			t.Fatalf("speed decreased at score %d: %v -> %v", score, prev, s)
		}
		if s > p.MaxSpeed() {
			t.Fatalf("speed %v above max at score %d", s, score)
		}
		prev = s
	}
}

func TestPacingSpawnInterval(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	if got := p.SpawnInterval(0); got != 100 {
		t.Errorf("SpawnInterval(0) = %d, expected 100", got)
	}
	if got := p.SpawnInterval(149); got != 90 {
		t.Errorf("SpawnInterval(149) = %d, expected 90", got)
	}
	if got := p.SpawnInterval(10000); got != 45 {
		t.Errorf("SpawnInterval(10000) = %d, expected floor 45", got)
	}
}

func TestPacingGoalAndCutoff(t *testing.T) {
	p := NewPacing(DefaultRunnerConfig())

	if !p.SpawnAllowed(899) || p.SpawnAllowed(900) {
		t.Error("spawning should stop at the cutoff score")
	}
	if p.GoalRevealed(949) || !p.GoalRevealed(950) {
		t.Error("goal should appear at the reveal score")
	}
}
