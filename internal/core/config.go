package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the host-facing summary of a game returned by Game.State().
type GameState struct {
	Score    int    // Current (or final) score
	Phase    string // Game-specific phase name, e.g. "playing"
	Playing  bool   // Whether the simulation is advancing
	GameOver bool   // Whether the run has ended, lost or won
	Won      bool   // Whether the run ended in a win
	Paused   bool   // Whether the game is paused
	Reason   string // Why the run ended, empty while running
	Ticks    int    // Simulation ticks in the current run
}

// Outcome names the terminal result for persistence.
func (s GameState) Outcome() string {
	switch {
	case s.Won:
		return "won"
	case s.GameOver:
		return "over"
	default:
		return ""
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick where the run reached a terminal state.
	Ended bool
}
