package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

// stubGame plays for endAt ticks once started, then ends.
type stubGame struct {
	started bool
	ticks   int
	endAt   int
	won     bool
	resets  int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.started = false
	g.ticks = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if !g.started || g.ticks >= g.endAt {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.started = true
			g.ticks = 0
		}
		return core.StepResult{State: g.State()}
	}
	if g.ticks < g.endAt {
		g.ticks++
	}
	return core.StepResult{State: g.State(), Ended: g.ticks == g.endAt}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 1, "stub")
}

func (g *stubGame) State() core.GameState {
	over := g.started && g.ticks >= g.endAt
	st := core.GameState{
		Score:    g.ticks * 10,
		Playing:  g.started && !over,
		GameOver: over,
		Won:      over && g.won,
		Ticks:    g.ticks,
	}
	if over && !g.won {
		st.Reason = "boom"
	}
	return st
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// tick sends n tick messages through any model.
func tick[M tea.Model](t *testing.T, m M, n int) M {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{})
		var ok bool
		if m, ok = next.(M); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		expected core.Action
		quit     bool
	}{
		{" ", core.ActionJump, false},
		{"up", core.ActionJump, false},
		{"w", core.ActionJump, false},
		{"enter", core.ActionConfirm, false},
		{"r", core.ActionRestart, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"tab", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(keyMsg(tc.key))
		if action != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%s, %v), expected (%s, %v)", tc.key, action, quit, tc.expected, tc.quit)
		}
	}
}

func TestKeyMapperMouse(t *testing.T) {
	km := NewKeyMapper()

	action, x, y := km.MapMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if action != core.ActionJump || x != 3 || y != 4 {
		t.Errorf("left click = (%s, %d, %d)", action, x, y)
	}

	action, _, _ = km.MapMouse(tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionMotion})
	if action != core.ActionNone {
		t.Errorf("motion mapped to %s", action)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAt: 5}
	m := NewModel(game, store, testConfig(), nil)
	m.Init()

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	m = tick(t, m, 20)

	if !m.State().GameOver {
		t.Fatalf("stub game should be over, state %+v", m.State())
	}

	runs, err := store.RecentRuns("stub", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Outcome != storage.OutcomeOver || runs[0].Reason != "boom" || runs[0].Ticks != 5 {
		t.Errorf("saved run = %+v", runs[0])
	}
	if m.BestScore() != 50 {
		t.Errorf("BestScore() = %d, expected 50", m.BestScore())
	}

	// A second run is saved again.
	next, _ = m.Update(keyMsg("r"))
	m = tick(t, next.(Model), 20)
	runs, _ = store.RecentRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("expected 2 saved runs after restart, got %d", len(runs))
	}
}

func TestModelLoadsBestScore(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunRecord{GameID: "stub", Score: 420, Outcome: storage.OutcomeOver})

	m := NewModel(&stubGame{endAt: 1}, store, testConfig(), nil)
	m.Init()

	if m.BestScore() != 420 {
		t.Errorf("BestScore() = %d, expected 420", m.BestScore())
	}
	if view := m.View(); !strings.Contains(view, "Best: 420") {
		t.Errorf("view missing best score:\n%s", view)
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(&stubGame{endAt: 2}, nil, testConfig(), nil)
	m.Init()

	next, _ := m.Update(keyMsg(" "))
	m = tick(t, next.(Model), 5)
	if !m.State().GameOver {
		t.Error("game should finish without a store")
	}
	if m.BestScore() != 20 {
		t.Errorf("BestScore() = %d, expected 20", m.BestScore())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{endAt: 1}, nil, testConfig(), nil)

	next, cmd := m.Update(keyMsg("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &stubGame{endAt: 100}
	m := NewModel(game, nil, testConfig(), nil)
	m.Init()
	next, _ := m.Update(keyMsg(" "))
	m = tick(t, next.(Model), 3)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionOpensScoreboard(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(&stubGame{endAt: 3}, store, testConfig(), nil)
	s.Init()

	// Not while playing.
	next, _ := s.Update(keyMsg(" "))
	s = tick(t, next.(SessionModel), 1)
	next, _ = s.Update(keyMsg("tab"))
	s = next.(SessionModel)
	if s.scoreboard != nil {
		t.Fatal("scoreboard opened during a run")
	}

	s = tick(t, s, 5)
	next, _ = s.Update(keyMsg("tab"))
	s = next.(SessionModel)
	if s.scoreboard == nil {
		t.Fatal("tab after the run should open the scoreboard")
	}
	if view := s.View(); !strings.Contains(view, "HIGH SCORES - ") || !strings.Contains(view, "Runs 1") {
		t.Errorf("scoreboard view:\n%s", view)
	}

	// Ticks keep flowing to the game while the scoreboard is open.
	s = tick(t, s, 2)

	next, _ = s.Update(keyMsg("esc"))
	s = next.(SessionModel)
	if s.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if !strings.Contains(s.View(), "stub") {
		t.Error("game view not restored")
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunRecord{GameID: "runner", Score: 100, Outcome: storage.OutcomeOver, Reason: "A bug crashed the build."})
	store.SaveRun(storage.RunRecord{GameID: "runner", Score: 990, Outcome: storage.OutcomeWon})

	m := NewScoreboardModel(store, "runner", 100, 30)
	if m.view != viewTop || len(m.scores) != 2 {
		t.Fatalf("top view loaded %d scores", len(m.scores))
	}

	next, _ := m.Update(keyMsg("l"))
	m = next.(ScoreboardModel)
	if m.view != viewWins || len(m.scores) != 1 || m.scores[0].Score != 990 {
		t.Errorf("wins view = %v", m.scores)
	}

	next, _ = m.Update(keyMsg("l"))
	m = next.(ScoreboardModel)
	if m.view != viewRecent || len(m.runs) != 2 || m.runs[1].Reason != "A bug crashed the build." {
		t.Errorf("recent view = %v", m.runs)
	}

	next, _ = m.Update(keyMsg("l"))
	if next.(ScoreboardModel).view != viewTop {
		t.Error("views should wrap around")
	}

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("standalone scoreboard should quit on back")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorAccent)
	s.DrawText(2, 0, "cd")
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") || !strings.Contains(lines[1], "ef") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
