// internal/httpserver/ws.go
//
// WebSocket keystroke stream for a round (GET /round/ws).
//
// Protocol:
//   - client → server: {"key":"a"} | {"key":"Enter"} | {"key":"Backspace"} | {"action":"reset"}
//   - server → client: {"type":"view","view":{...}} after connecting and after every message,
//     {"type":"error","error":"..."} when the round can no longer be loaded.
//
// Each round has at most one attached connection; a new one replaces the old.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nickofolas/wdle/internal/game"
	"github.com/nickofolas/wdle/internal/store"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type wsInbound struct {
	Key    string `json:"key"`
	Action string `json:"action"`
}

type wsOutbound struct {
	Type  string     `json:"type"`
	View  *game.View `json:"view,omitempty"`
	Error string     `json:"error,omitempty"`
}

// upgrader builds the WebSocket upgrader, accepting the configured client
// origin and same-host requests.
func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || origin == s.opts.ClientOrigin {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
}

// handleWS upgrades the request and processes keys until the client leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := roundIDFrom(r.Context())
	logger := hlog.FromRequest(r).With().Str("roundId", id).Logger()

	round, err := s.loadRound(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	up := s.upgrader()
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	detach := s.listeners.attach(id, conn)
	defer detach()
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	ctx = logger.WithContext(ctx)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go pingLoop(ctx, conn)

	logger.Debug().Int("listeners", s.listeners.count()).Msg("keyboard attached")
	view := round.View()
	if err := writeFrame(conn, wsOutbound{Type: "view", View: &view}); err != nil {
		return
	}

	for {
		var msg wsInbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.ClosePolicyViolation) {
				logger.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			logger.Debug().Msg("keyboard detached")
			return
		}

		view, err := s.mutate(ctx, id, func(g *game.Round) bool { return applyMessage(g, msg) })
		if err != nil {
			code := "store_failed"
			if errors.Is(err, store.ErrNotFound) {
				code = "round_not_found"
			} else {
				logger.Error().Err(err).Msg("round store")
			}
			_ = writeFrame(conn, wsOutbound{Type: "error", Error: code})
			return
		}
		if err := writeFrame(conn, wsOutbound{Type: "view", View: &view}); err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("websocket write")
			return
		}
	}
}

// applyMessage maps one inbound frame onto the round.
func applyMessage(g *game.Round, msg wsInbound) bool {
	if msg.Action == "reset" {
		return g.Reset()
	}
	k, ok := game.ParseKey(msg.Key)
	if !ok {
		return false
	}
	return g.HandleKey(k)
}

func writeFrame(conn *websocket.Conn, v wsOutbound) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// pingLoop keeps the connection alive. WriteControl is safe to call
// concurrently with the reader loop's writes.
func pingLoop(ctx context.Context, conn *websocket.Conn) {
	t := time.NewTicker(pingPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// closeConn sends a close frame and closes the connection.
func closeConn(c *websocket.Conn, code int, reason string) {
	_ = c.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	_ = c.Close()
}
