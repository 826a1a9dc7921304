// Package web streams runner frames to browsers over a websocket.
//
// Every connection gets its own engine. A loop goroutine owns that engine
// and is the only code that touches it: it drains queued client actions,
// steps the simulation on a ticker and publishes one JSON snapshot per
// frame.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/registry"
	"github.com/vovakirdan/folio-runner/internal/storage"
)

// ServerConfig holds configuration for the websocket server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// GameID is the registered game every connection plays.
	GameID string

	// Options are passed to the game factory for each connection.
	Options registry.Options

	// TickRate is the simulation and frame rate per connection.
	TickRate int

	// Seed fixes the engine seed. Zero picks a new seed per connection.
	Seed int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		GameID:   "runner",
		TickRate: 60,
	}
}

// Server serves /ws and /healthz.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
	ctx      context.Context
}

// NewServer creates a websocket server. store may be nil, in which case
// runs are not persisted.
func NewServer(cfg ServerConfig, store *storage.Store, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("web: %w %q", registry.ErrUnknownGame, cfg.GameID)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Frames are public and input is per connection.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		ctx: context.Background(),
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.serveWs)
	mux.HandleFunc("GET /healthz", s.serveHealth)
	return mux
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// serveWs upgrades the request and starts the connection's goroutines.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	game, err := registry.Create(s.config.GameID, s.config.Options)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
		http.Error(w, "game unavailable", http.StatusInternalServerError)
		return
	}
	snap, ok := game.(registry.Snapshotter)
	if !ok {
		s.logger.Error("game cannot be streamed", "game", s.config.GameID)
		http.Error(w, "game cannot be streamed", http.StatusNotImplemented)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: s.config.TickRate,
		Seed:     seed,
	})

	ctx, cancel := context.WithCancel(s.ctx)
	c := &client{
		server:  s,
		conn:    conn,
		game:    game,
		snap:    snap,
		send:    make(chan []byte, sendBuffer),
		actions: make(chan core.Action, actionBuffer),
		logger:  s.logger.With("remote", conn.RemoteAddr().String()),
		cancel:  cancel,
	}
	c.logger.Info("client connected", "game", game.ID())

	go c.writePump()
	go c.readPump()
	go c.loop(ctx)
}

// ListenAndServe starts the server and blocks until ctx is cancelled or
// the listener fails. Open connections are closed on shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.ctx = ctx
	s.http.BaseContext = func(net.Listener) context.Context { return ctx }
	s.logger.Info("starting websocket server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// saveRun stores a finished run. Errors are logged, never fatal.
func (s *Server) saveRun(gameID string, st core.GameState, logger *log.Logger) {
	logger.Info("run finished",
		"game", gameID,
		"outcome", st.Outcome(),
		"score", st.Score,
		"ticks", st.Ticks,
	)
	if s.store == nil {
		return
	}
	_, err := s.store.SaveRun(storage.RunRecord{
		GameID:  gameID,
		Score:   st.Score,
		Outcome: st.Outcome(),
		Reason:  st.Reason,
		Ticks:   st.Ticks,
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
	}
}

// encodeFrame marshals one frame message.
func encodeFrame(snapshot any) ([]byte, error) {
	return json.Marshal(frameMessage{Type: "frame", Frame: snapshot})
}
