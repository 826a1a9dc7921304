package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores = 100 // Max rows to load
)

// scoreView selects which runs the scoreboard lists.
type scoreView int

const (
	viewTop scoreView = iota
	viewWins
	viewRecent
	viewCount
)

func (v scoreView) String() string {
	switch v {
	case viewTop:
		return "Top Runs"
	case viewWins:
		return "Wins"
	case viewRecent:
		return "Recent"
	}
	return ""
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	view      scoreView
	scores    []storage.ScoreEntry
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	embedded  bool // Back returns to the caller instead of quitting
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model for one game.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		gameID: gameID,
		title:  registry.Title(gameID),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := max(m.width-8, 40) // Border, padding and margins

	var columns []table.Column
	if m.view == viewRecent {
		reasonW := max(tableWidth-8-8-14, 10)
		columns = []table.Column{
			{Title: "Score", Width: 8},
			{Title: "Result", Width: 8},
			{Title: "Reason", Width: min(reasonW, 28)},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Result", Width: 8},
			{Title: "Date", Width: min(max(tableWidth-24, 12), 20)},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(accentHex)).
		Background(lipgloss.Color("236")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches rows for the current view and the game's stats.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats = nil, nil, nil
	if m.store != nil {
		var err error
		switch m.view {
		case viewTop:
			m.scores, err = m.store.TopScores(m.gameID, maxScores)
		case viewWins:
			m.scores, err = m.store.TopWins(m.gameID, maxScores)
		case viewRecent:
			m.runs, err = m.store.RecentRuns(m.gameID, maxScores)
		}
		if err != nil {
			m.scores, m.runs = nil, nil
		}
		if stats, err := m.store.GetGameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewRecent {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", r.Score),
				r.Outcome,
				r.Reason,
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.Outcome,
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// switchView moves by delta views, wrapping around.
func (m *ScoreboardModel) switchView(delta int) {
	m.view = scoreView((int(m.view) + delta + int(viewCount)) % int(viewCount))
	m.table = m.createTable()
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accentHex)).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("HIGH SCORES - %s", m.title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderStats(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the view selector.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(violetHex)).
		Padding(0, 1)

	tabs := make([]string, viewCount)
	for v := scoreView(0); v < viewCount; v++ {
		if v == m.view {
			tabs[v] = activeTabStyle.Render(v.String())
		} else {
			tabs[v] = tabStyle.Render(" " + v.String() + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderStats renders the one-line summary of all runs.
func (m ScoreboardModel) renderStats() string {
	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats == nil || m.stats.GamesCount == 0 {
		return statsStyle.Render("no runs yet")
	}
	st := m.stats
	return statsStyle.Render(fmt.Sprintf("Runs %d  ·  Wins %d (%.0f%%)  ·  Best %d  ·  Avg %.0f",
		st.GamesCount, st.Wins, st.WinRate()*100, st.HighScore, st.AvgScore))
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 && len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.view == viewWins {
			return emptyStyle.Render("Nobody has reached the flag yet.\nClear the bugs and ship it!")
		}
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen as its own program.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	model := NewScoreboardModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
