package web

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/folio-runner/internal/core"
	"github.com/vovakirdan/folio-runner/internal/registry"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512

	sendBuffer   = 16
	actionBuffer = 32
)

// inputMessage is a client command.
type inputMessage struct {
	Type string `json:"type"` // "jump", "start", "restart" or "pause"
}

// frameMessage wraps a snapshot sent to the client.
type frameMessage struct {
	Type  string `json:"type"`
	Frame any    `json:"frame"`
}

// accepted lists the actions a remote client may send.
var accepted = map[core.Action]bool{
	core.ActionJump:    true,
	core.ActionConfirm: true,
	core.ActionRestart: true,
	core.ActionPause:   true,
}

// client is one websocket connection and the engine it drives.
type client struct {
	server  *Server
	conn    *websocket.Conn
	game    registry.Game
	snap    registry.Snapshotter
	send    chan []byte
	actions chan core.Action
	logger  *log.Logger
	cancel  context.CancelFunc
}

// readPump queues client actions for the loop. It ends the connection
// when the peer goes away.
func (c *client) readPump() {
	defer c.cancel()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("read failed", "error", err)
			}
			return
		}

		var in inputMessage
		if err := json.Unmarshal(message, &in); err != nil {
			c.logger.Warn("bad message", "error", err)
			continue
		}
		action, ok := core.ParseAction(in.Type)
		if !ok || !accepted[action] {
			c.logger.Warn("unknown action", "type", in.Type)
			continue
		}

		select {
		case c.actions <- action:
		default:
			c.logger.Debug("action dropped, queue full", "type", in.Type)
		}
	}
}

// loop owns the engine. It steps once per tick with the actions queued
// since the previous tick and publishes the resulting frame.
func (c *client) loop(ctx context.Context) {
	defer close(c.send)

	ticker := time.NewTicker(time.Second / time.Duration(c.server.config.TickRate))
	defer ticker.Stop()

	frame := core.NewInputFrame()
	c.publish()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("client disconnected", "game", c.game.ID())
			return

		case <-ticker.C:
		drain:
			for {
				select {
				case a := <-c.actions:
					frame.Set(a)
				default:
					break drain
				}
			}

			result := c.game.Step(frame)
			frame.Clear()
			if result.Ended {
				c.server.saveRun(c.game.ID(), result.State, c.logger)
			}
			c.publish()
		}
	}
}

// publish queues the current frame. A slow client skips frames instead
// of stalling the simulation.
func (c *client) publish() {
	data, err := encodeFrame(c.snap.Snapshot())
	if err != nil {
		c.logger.Error("cannot encode frame", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// writePump writes frames and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The loop stopped.
				c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.cancel()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.cancel()
				return
			}
		}
	}
}
