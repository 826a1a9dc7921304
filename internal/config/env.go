package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from FOLIO_RUNNER_* variables.
// The CLI uses them as flag defaults, so explicit flags still win.
type Env struct {
	ConfigPath string `env:"FOLIO_RUNNER_CONFIG"`
	DBPath     string `env:"FOLIO_RUNNER_DB"         envDefault:"~/.folio-runner/runs.db"`
	FPS        int    `env:"FOLIO_RUNNER_FPS"        envDefault:"60"`
	Seed       int64  `env:"FOLIO_RUNNER_SEED"`
	Difficulty string `env:"FOLIO_RUNNER_DIFFICULTY" envDefault:"normal"`
	SSHAddr    string `env:"FOLIO_RUNNER_SSH_ADDR"   envDefault:":23234"`
	WSAddr     string `env:"FOLIO_RUNNER_WS_ADDR"`
	HostKey    string `env:"FOLIO_RUNNER_HOST_KEY"`
	LogLevel   string `env:"FOLIO_RUNNER_LOG_LEVEL"  envDefault:"info"`
}

// LoadEnv parses the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
