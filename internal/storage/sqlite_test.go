package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScore records a lost run with only a score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(RunRecord{GameID: gameID, Score: score, Outcome: OutcomeOver}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		saveScore(t, store, "runner", score)
	}
	// Different game
	saveScore(t, store, "other", 500)

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Outcome != OutcomeOver {
		t.Errorf("outcome = %q, expected %q", scores[0].Outcome, OutcomeOver)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "runner", Score: 120, Outcome: OutcomeOver, Reason: "A bug crashed the build.", Ticks: 240},
		{GameID: "runner", Score: 980, Outcome: OutcomeWon, Ticks: 1650},
		{GameID: "runner", Score: 300, Outcome: OutcomeOver, Reason: "Production caught fire.", Ticks: 560},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("runner", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}
	if recent[0].Score != 300 || recent[0].Reason != "Production caught fire." || recent[0].Ticks != 560 {
		t.Errorf("newest run = %+v", recent[0])
	}
	if recent[1].Outcome != OutcomeWon {
		t.Errorf("second newest outcome = %q, expected won", recent[1].Outcome)
	}

	wins, err := store.TopWins("runner", 10)
	if err != nil {
		t.Fatalf("TopWins() failed: %v", err)
	}
	if len(wins) != 1 || wins[0].Score != 980 {
		t.Errorf("TopWins() = %v", wins)
	}
}

func TestStoreSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{GameID: "runner", Score: 1, Outcome: "playing"}); err == nil {
		t.Error("SaveRun() should reject a non-terminal outcome")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "runner", 100)
	saveScore(t, store, "runner", 300)
	saveScore(t, store, "runner", 200)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "runner", 100)
	saveScore(t, store, "runner", 200)
	saveScore(t, store, "other", 300)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("runner", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("Other game's scores should not be affected by clearing runner")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for empty game = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "runner", Score: 100, Outcome: OutcomeOver})
	store.SaveRun(RunRecord{GameID: "runner", Score: 960, Outcome: OutcomeWon})
	store.SaveRun(RunRecord{GameID: "runner", Score: 200, Outcome: OutcomeOver})
	store.SaveRun(RunRecord{GameID: "runner", Score: 1000, Outcome: OutcomeWon})

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 4 || stats.Wins != 2 || stats.HighScore != 1000 || stats.TotalScore != 2260 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 565 {
		t.Errorf("AvgScore = %.1f, expected 565", stats.AvgScore)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate() = %.2f, expected 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
