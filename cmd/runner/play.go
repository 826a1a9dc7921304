package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/games/runner"
	"github.com/vovakirdan/folio-runner/internal/platform/tui"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/W  - Jump (mouse click works too)
  Enter       - Start a run
  P/Esc       - Pause
  R           - Restart after the run ends
  Tab         - Scoreboard (between runs)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower base and top speed
  normal - The standard pacing
  hard   - Faster base and top speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log-file ./runner.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", envDefaults.Difficulty, "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the game)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := runner.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return fmt.Errorf("%w\nRun 'runner list' to see available games", err)
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, "runner")
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("playing without persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting run", "game", gameID, "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
