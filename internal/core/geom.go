// Package core provides fundamental types and utilities shared by the
// runner engine, the visual effects and the hosts that drive them.
// It has no external dependencies (especially no Bubble Tea) so that game
// logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// The simulation works in world units; only rendering maps them to cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Inset shrinks the box by m on every side. A box narrower than 2m
// collapses to zero size around its center rather than inverting.
func (b Box) Inset(m float64) Box {
	out := Box{X: b.X + m, Y: b.Y + m, W: b.W - 2*m, H: b.H - 2*m}
	if out.W < 0 {
		out.X = b.X + b.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = b.Y + b.H/2
		out.H = 0
	}
	return out
}

// Overlaps reports strict overlap. Touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// OverlapsInset tests overlap after shrinking both boxes by inset.
func OverlapsInset(a, b Box, inset float64) bool {
	return a.Inset(inset).Overlaps(b.Inset(inset))
}
