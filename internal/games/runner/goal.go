package runner

import "github.com/vovakirdan/folio-runner/internal/core"

// Goal is the finish flag. It stays hidden until the score nears the
// finish distance, then scrolls in at a fraction of game speed.
type Goal struct {
	X, Y    float64
	W, H    float64
	Visible bool
}

// Box returns the goal's bounding box.
func (g Goal) Box() core.Box {
	return core.NewBox(g.X, g.Y, g.W, g.H)
}

func (g *Goal) reset(spawnX, groundY float64) {
	g.X = spawnX
	g.Y = groundY - g.H
	g.Visible = false
}

// reached reports whether the flag's leading edge has come to the
// player's front edge.
func (g Goal) reached(p Player) bool {
	return g.Visible && g.X <= p.X+p.W
}
