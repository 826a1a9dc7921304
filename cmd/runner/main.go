// runner is the folio runner: a terminal side-scroller where you jump the
// bugs and fires of a release until the finish flag shows up.
//
// Usage:
//
//	runner play              - Play in this terminal
//	runner scores            - Show high scores and run stats
//	runner list              - List registered games
//	runner serve             - Serve over SSH and/or a websocket feed
//	runner config            - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.folio-runner/runs.db)
//	--log-level <level> - debug, info, warn or error
//
// Flag defaults can be set with FOLIO_RUNNER_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-runner/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/folio-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Environment defaults for all flags, read before any init runs
	envDefaults, envErr = config.LoadEnv()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Folio Runner - jump the bugs, reach the flag",
	Long: `Folio Runner is a terminal side-scroller. Jump over bugs and fires,
survive long enough and the finish flag rolls in.

Available commands:
  play     - Play in this terminal
  scores   - View high scores and run stats
  list     - Show registered games
  serve    - Serve over SSH and/or a websocket frame feed
  config   - Print the default config

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222 --ws :8080
  runner scores --tui`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envErr != nil {
			return envErr
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
