package runner

// RunState governs whether the simulation advances and which overlay is shown.
type RunState int

const (
	StateIdle    RunState = iota // Title screen, nothing moves
	StatePlaying                 // Simulation advances every tick
	StateOver                    // Hit an obstacle
	StateWon                     // Reached the goal flag
)

// String returns the lowercase state name used in snapshots and storage.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (s RunState) Terminal() bool {
	return s == StateOver || s == StateWon
}
