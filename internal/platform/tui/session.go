package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

// SessionModel manages the full session flow: game <-> scoreboard.
// This is the top-level model for both local and SSH play.
type SessionModel struct {
	store      *storage.Store
	gameID     string
	width      int
	height     int
	game       Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	return SessionModel{
		store:  store,
		gameID: game.ID(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		game:   NewModel(game, store, cfg, logger),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session. Ticks always reach the game so
// the clock keeps running while the scoreboard is open.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.scoreboard != nil {
			sb, _ := m.scoreboard.Update(msg)
			m.setScoreboard(sb)
		}
		return m.updateGame(msg)

	case TickMsg:
		return m.updateGame(msg)
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m.updateGame(msg)
}

// updateGame forwards a message to the game model.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.WantsScores() {
		m.game.wantsScores = false
		sb := NewScoreboardModel(m.store, m.gameID, m.width, m.height)
		sb.embedded = true
		m.scoreboard = &sb
	}

	return m, cmd
}

// updateScoreboard forwards a message to the open scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	m.setScoreboard(newModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) setScoreboard(model tea.Model) {
	if sb, ok := model.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return m.game.View()
}
