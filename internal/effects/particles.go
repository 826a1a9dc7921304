// Package effects holds the decorative animations shown around the runner:
// a drifting particle field, an eased number counter and a pointer follower.
// Like the engine, each effect is an owned instance advanced by Tick and
// drawn into a core.Screen; none of them schedule themselves.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/folio-runner/internal/core"
)

// ParticleConfig tunes a ParticleField. Distances are in field units; hosts
// choose how many units a screen cell spans.
type ParticleConfig struct {
	MaxCount      int     // Upper bound on particles
	Density       float64 // Particles per unit of field width
	Speed         float64 // Initial velocity spread per axis
	LinkDistance  float64 // Particles closer than this are linked
	PointerRadius float64 // Pointer pushes particles within this distance
	PointerForce  float64 // Push per unit of distance per tick
	MaxSpeed      float64 // Particles faster than this are damped
	Damping       float64 // Velocity multiplier applied when too fast
	Seed          int64
}

// DefaultParticleConfig matches the site's background: up to 80 particles,
// one per 20 units of width.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		MaxCount:      80,
		Density:       0.05,
		Speed:         0.3,
		LinkDistance:  120,
		PointerRadius: 150,
		PointerForce:  0.00005,
		MaxSpeed:      0.5,
		Damping:       0.99,
	}
}

// Particle is one drifting point.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Color   core.Color
}

// Link is a pair of particles within link distance. Strength falls from 1
// when touching to 0 at the link distance.
type Link struct {
	A, B     int
	Strength float64
}

// ParticleField is the animated particle background.
type ParticleField struct {
	cfg       ParticleConfig
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
	pointerX  float64
	pointerY  float64
	running   bool
}

// NewParticleField creates a stopped, empty field.
func NewParticleField(cfg ParticleConfig) *ParticleField {
	return &ParticleField{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Reset resizes the field and scatters a fresh set of particles.
func (f *ParticleField) Reset(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)

	count := min(f.cfg.MaxCount, int(math.Floor(f.width*f.cfg.Density)))
	f.particles = make([]Particle, max(count, 0))
	for i := range f.particles {
		color := core.ColorAccent
		if f.rng.Float64() > 0.5 {
			color = core.ColorViolet
		}
		f.particles[i] = Particle{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			VX:      (f.rng.Float64() - 0.5) * f.cfg.Speed,
			VY:      (f.rng.Float64() - 0.5) * f.cfg.Speed,
			Size:    f.rng.Float64()*2 + 0.5,
			Opacity: f.rng.Float64()*0.4 + 0.1,
			Color:   color,
		}
	}
}

// Start resumes animation.
func (f *ParticleField) Start() {
	f.running = true
}

// Stop freezes animation. Particles keep their positions.
func (f *ParticleField) Stop() {
	f.running = false
}

// Running reports whether Tick moves particles.
func (f *ParticleField) Running() bool {
	return f.running
}

// SetPointer moves the repelling pointer.
func (f *ParticleField) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// Particles returns the live particles. The slice must not be modified.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// Tick moves every particle one step. No-op while stopped.
func (f *ParticleField) Tick() {
	if !f.running {
		return
	}

	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		dx := f.pointerX - p.X
		dy := f.pointerY - p.Y
		if math.Hypot(dx, dy) < f.cfg.PointerRadius {
			p.VX -= dx * f.cfg.PointerForce
			p.VY -= dy * f.cfg.PointerForce
		}

		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
		}

		if math.Hypot(p.VX, p.VY) > f.cfg.MaxSpeed {
			p.VX *= f.cfg.Damping
			p.VY *= f.cfg.Damping
		}
	}
}

// Links returns every particle pair closer than the link distance.
func (f *ParticleField) Links() []Link {
	var links []Link
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			d := math.Hypot(f.particles[i].X-f.particles[j].X, f.particles[i].Y-f.particles[j].Y)
			if d < f.cfg.LinkDistance {
				links = append(links, Link{A: i, B: j, Strength: 1 - d/f.cfg.LinkDistance})
			}
		}
	}
	return links
}

// Render scales the field onto dst. Strong links show as a dot at their
// midpoint. Only blank cells are drawn so the field stays behind text.
func (f *ParticleField) Render(dst *core.Screen) {
	if f.width <= 0 || f.height <= 0 {
		return
	}
	sx := float64(dst.Width()) / f.width
	sy := float64(dst.Height()) / f.height

	plot := func(x, y float64, r rune, c core.Color) {
		cx, cy := int(x*sx), int(y*sy)
		if dst.IsBlank(cx, cy) {
			dst.SetColor(cx, cy, r, c)
		}
	}

	for _, p := range f.particles {
		r := '∙'
		if p.Size > 1.5 {
			r = '•'
		}
		plot(p.X, p.Y, r, p.Color)
	}

	for _, l := range f.Links() {
		if l.Strength < 0.5 {
			continue
		}
		a, b := f.particles[l.A], f.particles[l.B]
		plot((a.X+b.X)/2, (a.Y+b.Y)/2, '·', core.ColorGray)
	}
}
