package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/folio-runner/internal/config"
)

// Star is a parallax background point. Depth scales its scroll speed.
type Star struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Depth float64 `json:"depth"` // 0.1 (far) to 0.5 (near)
}

// Scenery holds decorative elements. Nothing in it affects gameplay.
type Scenery struct {
	Stars        []Star
	GroundOffset float64 // Scroll offset of the ground markings
	spacing      float64
	width        float64
}

func newScenery(cfg config.RunnerConfig, rng *rand.Rand) Scenery {
	s := Scenery{
		Stars:   make([]Star, cfg.Scenery.Stars),
		spacing: cfg.Scenery.GroundMarkSpacing,
		width:   cfg.World.Width,
	}
	sky := cfg.World.GroundY * 0.6
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:     rng.Float64() * cfg.World.Width,
			Y:     rng.Float64() * sky,
			Depth: 0.1 + rng.Float64()*0.4,
		}
	}
	return s
}

// advance scrolls stars and ground markings by the current speed.
func (s *Scenery) advance(speed float64) {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.X -= speed * st.Depth
		if st.X < 0 {
			st.X += s.width
		}
	}
	if s.spacing > 0 {
		s.GroundOffset = math.Mod(s.GroundOffset+speed, s.spacing)
	}
}
