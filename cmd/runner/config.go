package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner config",
	Long: `Print the built-in runner config as YAML. Save it to
~/.folio-runner/configs/runner.yaml (or pass it with --config) to tune
physics, pacing, obstacles and the finish flag.

Example:
  runner config > ~/.folio-runner/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
