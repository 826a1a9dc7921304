package runner

import (
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/folio-runner/internal/config"
	"github.com/vovakirdan/folio-runner/internal/core"
)

// Names of the built-in obstacle categories.
const (
	KindBug  = "bug"
	KindFire = "fire"
)

// Kind is an obstacle category. Each kind ends a run with its own message.
type Kind struct {
	Name    string
	W, H    float64
	Glyph   rune
	Color   core.Color
	Message string
	Weight  int
}

func kindsFromConfig(cfgs []config.ObstacleKindConfig) []Kind {
	kinds := make([]Kind, 0, len(cfgs))
	for _, c := range cfgs {
		glyph, _ := utf8.DecodeRuneInString(c.Glyph)
		if glyph == utf8.RuneError {
			glyph = '#'
		}
		color, ok := core.ParseColor(c.Color)
		if !ok {
			color = core.ColorRed
		}
		kinds = append(kinds, Kind{
			Name:    c.Name,
			W:       c.Width,
			H:       c.Height,
			Glyph:   glyph,
			Color:   color,
			Message: c.Message,
			Weight:  c.Weight,
		})
	}
	return kinds
}

// Obstacle is one hazard scrolling toward the player.
type Obstacle struct {
	X, Y float64
	Kind Kind
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Kind.W, o.Kind.H)
}

// ObstacleManager handles spawning, movement and removal of obstacles.
type ObstacleManager struct {
	obstacles   []Obstacle
	kinds       []Kind
	totalWeight int
	rng         *rand.Rand
	spawnX      float64 // Obstacles enter at the right edge of the world
	groundY     float64
	sinceSpawn  int // Ticks since the last spawn
}

// NewObstacleManager creates a manager for the given kinds.
func NewObstacleManager(kinds []Kind, world config.WorldConfig, rng *rand.Rand) *ObstacleManager {
	om := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		kinds:     kinds,
		spawnX:    world.Width,
		groundY:   world.GroundY,
	}
	for _, k := range kinds {
		om.totalWeight += k.Weight
	}
	om.Reset(rng)
	return om
}

// Reset clears all obstacles and swaps in the run's RNG.
func (om *ObstacleManager) Reset(rng *rand.Rand) {
	om.obstacles = om.obstacles[:0]
	om.rng = rng
	om.sinceSpawn = 0
}

// TrySpawn counts one tick toward the next spawn and, once the interval
// has elapsed, spawns with the configured chance. Returns true on spawn.
func (om *ObstacleManager) TrySpawn(score int, pacing *config.Pacing) bool {
	if !pacing.SpawnAllowed(score) {
		return false
	}
	om.sinceSpawn++
	if om.sinceSpawn < pacing.SpawnInterval(score) {
		return false
	}
	if om.rng.Float64() >= pacing.SpawnChance() {
		return false
	}
	om.Spawn(om.pickKind())
	om.sinceSpawn = 0
	return true
}

// Spawn places an obstacle of the given kind at the right edge, on the ground.
func (om *ObstacleManager) Spawn(k Kind) {
	om.obstacles = append(om.obstacles, Obstacle{
		X:    om.spawnX,
		Y:    om.groundY - k.H,
		Kind: k,
	})
}

// pickKind chooses a kind by weight.
func (om *ObstacleManager) pickKind() Kind {
	if om.totalWeight <= 0 {
		return om.kinds[0]
	}
	n := om.rng.Intn(om.totalWeight)
	for _, k := range om.kinds {
		if n < k.Weight {
			return k
		}
		n -= k.Weight
	}
	return om.kinds[len(om.kinds)-1]
}

// Advance scrolls every obstacle left and drops those fully off-screen.
func (om *ObstacleManager) Advance(dx float64) {
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.X -= dx
		if o.X+o.Kind.W >= 0 {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept
}

// Hit returns the first obstacle overlapping the player box after both
// boxes are shrunk by inset.
func (om *ObstacleManager) Hit(player core.Box, inset float64) (Obstacle, bool) {
	for _, o := range om.obstacles {
		if core.OverlapsInset(player, o.Box(), inset) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Obstacles returns the live obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Kind looks up a kind by name.
func (om *ObstacleManager) Kind(name string) (Kind, bool) {
	for _, k := range om.kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}
