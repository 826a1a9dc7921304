package effects

import "math"

// Counter eases an integer from one value to another over a fixed number
// of ticks, fast at first and settling at the end.
type Counter struct {
	From, To int
	duration int
	elapsed  int
}

// NewCounter creates a counter that reaches to after ticks calls to Tick.
// A non-positive duration finishes immediately.
func NewCounter(from, to, ticks int) *Counter {
	return &Counter{From: from, To: to, duration: max(ticks, 0)}
}

// Retarget restarts the animation from the current value toward to.
func (c *Counter) Retarget(to, ticks int) {
	c.From = c.Value()
	c.To = to
	c.duration = max(ticks, 0)
	c.elapsed = 0
}

// Tick advances the animation one step.
func (c *Counter) Tick() {
	if c.elapsed < c.duration {
		c.elapsed++
	}
}

// Done reports whether the counter has reached its target.
func (c *Counter) Done() bool {
	return c.elapsed >= c.duration
}

// Progress returns the eased progress in [0, 1].
func (c *Counter) Progress() float64 {
	if c.Done() {
		return 1
	}
	p := float64(c.elapsed) / float64(c.duration)
	return 1 - math.Pow(1-p, 3)
}

// Value returns the current integer value, floored.
func (c *Counter) Value() int {
	if c.Done() {
		return c.To
	}
	return c.From + int(math.Floor(float64(c.To-c.From)*c.Progress()))
}
