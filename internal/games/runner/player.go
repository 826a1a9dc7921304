package runner

import "github.com/vovakirdan/folio-runner/internal/core"

// Player is the runner. X never changes; only vertical motion is simulated.
type Player struct {
	X, Y    float64 // Top-left corner in world units
	VY      float64 // Vertical velocity, negative = up
	W, H    float64
	Jumping bool
	Phase   int // Running animation phase, advances only on the ground
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// groundTop is the y of the player's top edge when standing.
func (p Player) groundTop(groundY float64) float64 {
	return groundY - p.H
}

// jump launches the player. Airborne players cannot jump again.
func (p *Player) jump(velocity float64) bool {
	if p.Jumping {
		return false
	}
	p.VY = velocity
	p.Jumping = true
	return true
}

// integrate applies one tick of gravity and lands the player on the ground.
func (p *Player) integrate(gravity, groundY float64) {
	p.VY += gravity
	p.Y += p.VY
	if top := p.groundTop(groundY); p.Y >= top {
		p.Y = top
		p.VY = 0
		p.Jumping = false
	}
}

// animate advances the running cycle while on the ground.
func (p *Player) animate(cycle int) {
	if p.Jumping || cycle <= 0 {
		return
	}
	p.Phase = (p.Phase + 1) % cycle
}
