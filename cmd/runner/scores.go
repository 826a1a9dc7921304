package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-runner/internal/games/runner"
	"github.com/vovakirdan/folio-runner/internal/platform/tui"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and run stats",
	Long: `Display run stats and the top 10 scores.

With --tui the interactive scoreboard opens instead, with tabs for top
runs, wins and recent runs. With --clear every stored run of the game is
deleted.

Examples:
  runner scores
  runner scores --tui
  runner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := runner.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q\nRun 'runner list' to see available games", registry.ErrUnknownGame, gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", registry.Title(gameID))
		return nil
	}

	if flagScoresTUI {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, width, height)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d   Wins: %d (%.0f%%)   Best: %d   Avg: %.0f\n",
		stats.GamesCount, stats.Wins, stats.WinRate()*100, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(out, "Last played: %s\n", stats.LastPlayed.Local().Format(time.RFC822))
	}
	return nil
}
