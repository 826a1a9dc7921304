package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/folio-runner/internal/games/runner"
	"github.com/vovakirdan/folio-runner/internal/platform/tui"
	"github.com/vovakirdan/folio-runner/internal/platform/web"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

var (
	flagSSHAddr     string
	flagWSAddr      string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
	flagServeDiff   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the runner over SSH and/or a websocket feed",
	Long: `Start the remote hosts. Every SSH session and every websocket
connection gets its own run. All runs go to the same database, so players
share one leaderboard.

Hosts:
  --ssh  - Full terminal game over SSH (set to "" to disable)
  --ws   - JSON frame feed at /ws plus /healthz (disabled by default)

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.folio-runner/host_key

Examples:
  runner serve                        # SSH on :23234
  runner serve --ssh :2222            # SSH on port 2222
  runner serve --ws :8080             # SSH and websocket feed
  runner serve --ssh "" --ws :8080    # Websocket feed only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envDefaults.SSHAddr, "SSH server address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", envDefaults.WSAddr, "Websocket feed address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", envDefaults.HostKey, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", envDefaults.ConfigPath, "Path to custom runner config YAML")
	serveCmd.Flags().StringVar(&flagServeDiff, "difficulty", envDefaults.Difficulty, "Difficulty preset: easy, normal, hard")
}

// host is a server that runs until its context is cancelled.
type host interface {
	ListenAndServe(ctx context.Context) error
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagWSAddr == "" {
		return errors.New("nothing to serve: set --ssh and/or --ws")
	}

	logger := newLogger(os.Stderr, "runner")
	opts := registry.Options{ConfigPath: flagServeConfig, Difficulty: flagServeDiff}

	// Fail fast on a bad config instead of on the first connection.
	if _, err := registry.Create(runner.ID, opts); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("serving without persistence", "db", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var hosts []host
	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.GameID = runner.ID
		cfg.Options = opts
		cfg.TickRate = flagFPS
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

		srv, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("runner-ssh"))
		if err != nil {
			return err
		}
		hosts = append(hosts, srv)
		fmt.Printf("Connect with: ssh localhost -p %s\n", port(flagSSHAddr))
	}
	if flagWSAddr != "" {
		cfg := web.DefaultServerConfig()
		cfg.Address = flagWSAddr
		cfg.GameID = runner.ID
		cfg.Options = opts
		cfg.TickRate = flagFPS
		cfg.Seed = flagSeed

		srv, err := web.NewServer(cfg, store, logger.WithPrefix("runner-ws"))
		if err != nil {
			return err
		}
		hosts = append(hosts, srv)
		fmt.Printf("Frame feed at ws://localhost:%s/ws\n", port(flagWSAddr))
	}
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveAll(ctx, logger, hosts)
}

// serveAll runs every host until ctx is cancelled. The first host to fail
// stops the others.
func serveAll(ctx context.Context, logger *log.Logger, hosts []host) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range hosts {
		g.Go(func() error {
			if err := h.ListenAndServe(ctx); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
