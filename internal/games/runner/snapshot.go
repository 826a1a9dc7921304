package runner

// Snapshot is a JSON view of a whole run, streamed to web clients
// once per frame. Coordinates are world units.
type Snapshot struct {
	State        string          `json:"state"`
	Paused       bool            `json:"paused"`
	Score        int             `json:"score"`
	Speed        float64         `json:"speed"`
	Ticks        int             `json:"ticks"`
	Reason       string          `json:"reason,omitempty"`
	World        WorldSnapshot   `json:"world"`
	Player       PlayerSnapshot  `json:"player"`
	Obstacles    []ObstacleShape `json:"obstacles"`
	Goal         GoalSnapshot    `json:"goal"`
	Stars        []Star          `json:"stars"`
	GroundOffset float64         `json:"groundOffset"`
}

type WorldSnapshot struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	GroundY float64 `json:"groundY"`
}

type PlayerSnapshot struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Jumping bool    `json:"jumping"`
	Phase   int     `json:"phase"`
}

type ObstacleShape struct {
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Glyph string  `json:"glyph"`
	Color string  `json:"color"`
}

type GoalSnapshot struct {
	Visible bool    `json:"visible"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
}

// Frame copies the current state into a Snapshot.
func (g *Game) Frame() Snapshot {
	obstacles := g.obstacles.Obstacles()
	shapes := make([]ObstacleShape, 0, len(obstacles))
	for _, o := range obstacles {
		shapes = append(shapes, ObstacleShape{
			Kind:  o.Kind.Name,
			X:     o.X,
			Y:     o.Y,
			W:     o.Kind.W,
			H:     o.Kind.H,
			Glyph: string(o.Kind.Glyph),
			Color: o.Kind.Color.String(),
		})
	}

	return Snapshot{
		State:  g.state.String(),
		Paused: g.paused,
		Score:  g.score,
		Speed:  g.speed,
		Ticks:  g.ticks,
		Reason: g.reason,
		World: WorldSnapshot{
			Width:   g.cfg.World.Width,
			Height:  g.cfg.World.Height,
			GroundY: g.cfg.World.GroundY,
		},
		Player: PlayerSnapshot{
			X:       g.player.X,
			Y:       g.player.Y,
			W:       g.player.W,
			H:       g.player.H,
			Jumping: g.player.Jumping,
			Phase:   g.player.Phase,
		},
		Obstacles: shapes,
		Goal: GoalSnapshot{
			Visible: g.goal.Visible,
			X:       g.goal.X,
			Y:       g.goal.Y,
			W:       g.goal.W,
			H:       g.goal.H,
		},
		Stars:        append([]Star(nil), g.scenery.Stars...),
		GroundOffset: g.scenery.GroundOffset,
	}
}

// Snapshot implements registry.Snapshotter.
func (g *Game) Snapshot() any {
	return g.Frame()
}
