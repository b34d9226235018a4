// internal/httpserver/routes_round.go
//
// HTTP routes for playing a round.
//   - POST /round/new   → start a round (random or daily secret), bind the session to it
//   - GET  /round       → current view
//   - POST /round/keys  → apply a batch of keys in order
//   - POST /round/reset → restart a finished round with a new secret
//
// Invalid keys and submissions are not errors: they simply leave the round
// unchanged and the returned view shows it.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nickofolas/wdle/internal/game"
)

// newRoundReq/Res payloads for POST /round/new.
type newRoundReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}
type newRoundRes struct {
	RoundID string    `json:"roundId"`
	Token   string    `json:"token"`
	View    game.View `json:"view"`
}

// handleNewRound creates a round, stores it and issues a session bound to it.
// A round the caller was previously bound to is discarded.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	if req.Mode == "" {
		req.Mode = game.ModeRandom
	}
	draw, ok := s.deps.Drawers[req.Mode]
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}

	if tok := s.bearerOrCookie(r); tok != "" {
		if old, err := s.deps.Sessions.Verify(tok); err == nil {
			if err := s.deps.Store.Delete(r.Context(), old); err != nil {
				hlog.FromRequest(r).Warn().Err(err).Str("roundId", old).Msg("discard previous round")
			}
		}
	}

	round := game.NewRound(s.deps.NewID(), s.deps.Lists, draw,
		game.WithRows(s.opts.Rows), game.WithMode(req.Mode))
	if err := s.deps.Store.Save(r.Context(), round.Snapshot()); err != nil {
		writeStoreError(w, r, err)
		return
	}

	tok, exp, err := s.deps.Sessions.Sign(round.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	hlog.FromRequest(r).Info().Str("roundId", round.ID).Str("mode", round.Mode).Msg("round started")
	writeJSON(w, http.StatusOK, newRoundRes{RoundID: round.ID, Token: tok, View: round.View()})
}

// handleGetRound returns the current view.
func (s *Server) handleGetRound(w http.ResponseWriter, r *http.Request) {
	round, err := s.loadRound(r.Context(), roundIDFrom(r.Context()))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round.View())
}

// keysReq is the payload for POST /round/keys.
type keysReq struct {
	Keys []string `json:"keys"`
}

// handleKeys applies keys in order. Unrecognized key names are dropped.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	var req keysReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	keys := game.ParseKeys(req.Keys)
	view, err := s.mutate(r.Context(), roundIDFrom(r.Context()), func(g *game.Round) bool {
		return g.HandleKeys(keys)
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// handleReset restarts a finished round; an unfinished one is returned unchanged.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	view, err := s.mutate(r.Context(), roundIDFrom(r.Context()), (*game.Round).Reset)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// loadRound restores a round from the store.
func (s *Server) loadRound(ctx context.Context, id string) (*game.Round, error) {
	snap, err := s.deps.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	draw, ok := s.deps.Drawers[snap.Mode]
	if !ok {
		draw = s.deps.Drawers[game.ModeRandom]
	}
	return game.Restore(snap, s.deps.Lists, draw)
}

// mutate loads a round under its lock, applies fn and saves the round if fn
// reports a change. It returns the resulting view.
func (s *Server) mutate(ctx context.Context, id string, fn func(*game.Round) bool) (game.View, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	round, err := s.loadRound(ctx, id)
	if err != nil {
		return game.View{}, err
	}
	if fn(round) {
		if err := s.deps.Store.Save(ctx, round.Snapshot()); err != nil {
			return game.View{}, err
		}
		if round.IsCompleted() {
			zerolog.Ctx(ctx).Info().Str("roundId", id).Str("status", string(round.Status())).
				Int("guesses", len(round.Submitted())).Msg("round finished")
		}
	}
	return round.View(), nil
}
