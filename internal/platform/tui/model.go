package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-runner/internal/config"
	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/effects"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

// Particle field units per terminal cell. Cells are roughly twice as tall
// as they are wide, so the field keeps the site's proportions.
const (
	cellUnitsW = 8
	cellUnitsH = 16
)

// helpRows is the space reserved under the game for the key help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	field     *effects.ParticleField
	cursor    *effects.Follower
	best      *effects.Counter
	bestScore int

	runSaved    bool // Whether the current finished run has been stored
	quitting    bool
	wantsScores bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pcfg := effects.DefaultParticleConfig()
	pcfg.Seed = cfg.Seed

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		field:      effects.NewParticleField(pcfg),
		cursor:     effects.NewFollower(float64(cfg.ScreenW/2), float64(cfg.ScreenH/2)),
	}
	m.help.Width = cfg.ScreenW
	m.field.Reset(float64(m.screen.Width()*cellUnitsW), float64(m.screen.Height()*cellUnitsH))

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
		m.bestScore = best
	}
	m.best = effects.NewCounter(m.bestScore, m.bestScore, 0)

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.field.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if !m.gameState.Playing {
			m.wantsScores = true
		}
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns clicks into jumps and moves the pointer effects.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action, x, y := m.keys.MapMouse(msg)
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	m.field.SetPointer(float64(x*cellUnitsW), float64(y*cellUnitsH))
	m.cursor.SetTarget(float64(x), float64(y))
	return m, nil
}

// handleResize processes window resize events. The runner scales to any
// size, so the run in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.field.Reset(float64(m.screen.Width()*cellUnitsW), float64(m.screen.Height()*cellUnitsH))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Playing {
		m.field.Stop()
		m.runSaved = false
	} else {
		m.field.Start()
	}
	m.field.Tick()
	m.cursor.Tick()
	m.best.Tick()

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.recordRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run and animates a new best score.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"outcome", st.Outcome(),
		"score", st.Score,
		"ticks", st.Ticks,
	)

	if st.Score > m.bestScore {
		m.bestScore = st.Score
		m.best.Retarget(st.Score, m.config.TickRate)
		m.logger.Info("new best score", "score", st.Score)
	}

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:  m.game.ID(),
		Score:   st.Score,
		Outcome: st.Outcome(),
		Reason:  st.Reason,
		Ticks:   st.Ticks,
	})
	if err != nil {
		m.logger.Error("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.compose()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// compose draws the game, the best score and, between runs, the backdrop
// effects into the screen buffer.
func (m Model) compose() {
	m.game.Render(m.screen)

	best := fmt.Sprintf(" Best: %d ", m.best.Value())
	m.screen.DrawTextColor((m.screen.Width()-utf8.RuneCountInString(best))/2, 0, best, core.ColorViolet)

	if m.gameState.Playing {
		return
	}
	m.field.Render(m.screen)
	if x, y := m.cursor.Pos(); m.screen.IsBlank(x, y) {
		m.screen.SetColor(x, y, '◌', core.ColorAccent)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.compose()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// BestScore returns the best score known to this model.
func (m Model) BestScore() int {
	return m.bestScore
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsScores reports whether the user asked for the scoreboard.
func (m Model) WantsScores() bool {
	return m.wantsScores
}

// Run starts a local Bubble Tea program for the game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
