// Package runner implements the portfolio runner: a side-scroller where the
// player jumps over bugs and fires until the finish flag arrives.
//
// The simulation is a pure state machine advanced by Tick. Hosts decide
// when ticks happen; nothing here schedules itself or touches a terminal.
package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/folio-runner/internal/config"
	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/registry"
)

// ID is the registry and storage identifier of the runner.
const ID = "runner"

// Game owns all state of one runner instance. It is not safe for
// concurrent use; hosts drive it from a single goroutine.
type Game struct {
	cfg     config.RunnerConfig
	pacing  *config.Pacing
	runtime core.RuntimeConfig
	runs    int64 // Runs started since Reset, mixed into the seed

	state  RunState
	paused bool
	ticks  int     // Ticks since the run started
	score  int     // floor(ticks * speed / 10)
	speed  float64 // World units per tick
	reason string  // Failure message of the obstacle that ended the run

	player    Player
	obstacles *ObstacleManager
	goal      Goal
	scenery   Scenery
}

// New creates a runner with the given configuration, on its title screen.
func New(cfg config.RunnerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		pacing: config.NewPacing(cfg),
		player: Player{X: cfg.Player.X, W: cfg.Player.Width, H: cfg.Player.Height},
		goal:   Goal{W: cfg.Goal.Width, H: cfg.Goal.Height},
	}
	g.obstacles = NewObstacleManager(kindsFromConfig(cfg.Obstacles), cfg.World, rand.New(rand.NewSource(0)))
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Load builds a runner from a config file search and a difficulty preset.
func Load(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParseDifficulty(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return New(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Folio Runner"
}

// Reset puts the game back on the title screen with fresh entities.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.runs = 0
	g.resetRun()
	g.state = StateIdle
}

// resetRun restores every entity to its start-of-run value.
func (g *Game) resetRun() {
	seed := g.runtime.Seed + g.runs
	g.runs++

	g.paused = false
	g.ticks = 0
	g.score = 0
	g.speed = g.pacing.Speed(0)
	g.reason = ""

	g.player.Y = g.player.groundTop(g.cfg.World.GroundY)
	g.player.VY = 0
	g.player.Jumping = false
	g.player.Phase = 0

	g.obstacles.Reset(rand.New(rand.NewSource(seed)))
	g.goal.reset(g.cfg.World.Width, g.cfg.World.GroundY)
	// Scenery draws from its own source so star layout never shifts the
	// obstacle sequence.
	g.scenery = newScenery(g.cfg, rand.New(rand.NewSource(seed^0x5eed)))
}

// Start begins a run from the title screen. No-op in any other state.
func (g *Game) Start() bool {
	if g.state != StateIdle {
		return false
	}
	g.resetRun()
	g.state = StatePlaying
	return true
}

// Restart begins a new run after one ended. No-op in any other state.
func (g *Game) Restart() bool {
	if !g.state.Terminal() {
		return false
	}
	g.resetRun()
	g.state = StatePlaying
	return true
}

// Jump launches the player if playing and on the ground.
// A jump requested while airborne changes nothing.
func (g *Game) Jump() bool {
	if g.state != StatePlaying || g.paused {
		return false
	}
	return g.player.jump(g.cfg.Physics.JumpVelocity)
}

// TogglePause freezes or resumes a run in progress.
func (g *Game) TogglePause() {
	if g.state == StatePlaying {
		g.paused = !g.paused
	}
}

// Step maps one frame of input onto actions, then ticks once.
// Outside a run the jump key doubles as start so a single key plays.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state != StatePlaying {
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			if g.state == StateIdle {
				g.Start()
			} else {
				g.Restart()
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	ended := g.Tick()
	return core.StepResult{State: g.State(), Ended: ended}
}

// Tick advances the simulation by one frame. It does nothing unless a run
// is in progress and unpaused. Returns true when this tick ended the run.
func (g *Game) Tick() bool {
	if g.state != StatePlaying || g.paused {
		return false
	}

	g.ticks++
	g.score = int(math.Floor(float64(g.ticks) * g.speed / 10))
	g.speed = g.pacing.Speed(g.score)

	g.player.integrate(g.cfg.Physics.Gravity, g.cfg.World.GroundY)
	g.player.animate(g.cfg.Player.RunCycle)

	g.obstacles.TrySpawn(g.score, g.pacing)
	g.obstacles.Advance(g.speed)

	if hit, ok := g.obstacles.Hit(g.player.Box(), g.cfg.Collision.Inset); ok {
		g.state = StateOver
		g.reason = hit.Kind.Message
		return true
	}

	if g.pacing.GoalRevealed(g.score) {
		if !g.goal.Visible {
			g.goal.Visible = true
			g.goal.X = g.cfg.World.Width
		}
		g.goal.X -= g.speed * g.cfg.Goal.SpeedFactor
		if g.goal.reached(g.player) {
			g.state = StateWon
			return true
		}
	}

	g.scenery.advance(g.speed)
	return false
}

// RunState returns the state machine's current state.
func (g *Game) RunState() RunState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Speed returns the current scroll speed in world units per tick.
func (g *Game) Speed() float64 {
	return g.speed
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Goal returns a copy of the goal flag.
func (g *Game) Goal() Goal {
	return g.goal
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.Obstacles()
}

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.state.String(),
		Playing:  g.state == StatePlaying,
		GameOver: g.state.Terminal(),
		Won:      g.state == StateWon,
		Paused:   g.paused,
		Reason:   g.reason,
		Ticks:    g.ticks,
	}
}

// String is a one-line debug summary.
func (g *Game) String() string {
	return fmt.Sprintf("runner[%s score=%d speed=%.1f obstacles=%d]",
		g.state, g.score, g.speed, len(g.obstacles.Obstacles()))
}

func init() {
	registry.Register(ID, "Folio Runner", func(opts registry.Options) (registry.Game, error) {
		return Load(opts)
	})
}
