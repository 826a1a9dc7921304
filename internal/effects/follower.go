package effects

// DefaultFollowRate is the fraction of the remaining distance covered per tick.
const DefaultFollowRate = 0.12

// Follower trails a target point, closing a fixed fraction of the gap
// every tick.
type Follower struct {
	X, Y   float64
	TX, TY float64
	Rate   float64
}

// NewFollower creates a follower resting at (x, y).
func NewFollower(x, y float64) *Follower {
	return &Follower{X: x, Y: y, TX: x, TY: y, Rate: DefaultFollowRate}
}

// SetTarget moves the point being followed.
func (f *Follower) SetTarget(x, y float64) {
	f.TX, f.TY = x, y
}

// Tick moves one step toward the target.
func (f *Follower) Tick() {
	f.X += (f.TX - f.X) * f.Rate
	f.Y += (f.TY - f.Y) * f.Rate
}

// Pos returns the follower position rounded to cells.
func (f *Follower) Pos() (int, int) {
	return int(f.X + 0.5), int(f.Y + 0.5)
}
