// internal/httpserver/server.go
//
// HTTP server wiring for the round backend.
// Responsibilities:
//   - Router + middleware (access logs, request IDs, real IP, panic recovery,
//     timeouts, JSON content type, CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: POST /round/new, GET /round, POST /round/keys, POST /round/reset.
//   - Keystroke stream: GET /round/ws (WebSocket, see ws.go).
//   - Session token handling (bearer header or cookie).
//
// Notes:
//   - Rounds live in a store.Store as snapshots; every mutation runs under a
//     per-round lock so keys for one round apply strictly in arrival order.
//   - CORS is origin-aware and credentials-enabled so the session cookie works.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/nickofolas/wdle/internal/game"
	"github.com/nickofolas/wdle/internal/logging"
	"github.com/nickofolas/wdle/internal/session"
	"github.com/nickofolas/wdle/internal/store"
	"github.com/nickofolas/wdle/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Store    store.Store
	Sessions *session.Manager
	Lists    *words.Lists
	// Drawers maps a round mode (game.ModeRandom, game.ModeDaily) to its secret source.
	Drawers map[string]game.Drawer
	// NewID generates round ids; defaults to random UUIDs.
	NewID func() string
}

// Options tune HTTP behavior.
type Options struct {
	ClientOrigin   string
	CookieName     string
	Production     bool
	Rows           int
	HandlerTimeout time.Duration
}

// Server bundles router, round store and session handling.
type Server struct {
	r         *chi.Mux
	http      *http.Server
	deps      Deps
	opts      Options
	locks     *roundLocks
	listeners *listeners
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps, o Options) *Server {
	if d.NewID == nil {
		d.NewID = func() string { return uuid.NewString() }
	}
	if o.CookieName == "" {
		o.CookieName = "wdle_session"
	}
	if o.Rows <= 0 {
		o.Rows = game.DefaultRows
	}
	if o.HandlerTimeout <= 0 {
		o.HandlerTimeout = 10 * time.Second
	}

	s := &Server{
		r:         chi.NewRouter(),
		deps:      d,
		opts:      o,
		locks:     newRoundLocks(),
		listeners: newListeners(),
	}
	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 10 * time.Second}

	// --- middleware ---
	s.r.Use(chimw.RealIP)                     // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(logging.Middleware(log.Logger)...) // request-scoped zerolog + access log
	s.r.Use(chimw.Recoverer)                  // recover from panics
	s.r.Use(s.cors)                           // credentials-friendly CORS

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(o.HandlerTimeout)) // bound handler time
		r.Use(jsonContentType)                 // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wdle","endpoints":["/health","POST /round/new","GET /round","POST /round/keys","POST /round/reset","GET /round/ws"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			sc, gc := s.deps.Lists.Stats()
			_ = json.NewEncoder(w).Encode(map[string]int{"secrets": sc, "guesses": gc})
		})

		r.Post("/round/new", s.handleNewRound)
		r.With(s.withSession).Get("/round", s.handleGetRound)
		r.With(s.withSession).Post("/round/keys", s.handleKeys)
		r.With(s.withSession).Post("/round/reset", s.handleReset)
	})

	// Long-lived; kept outside the handler timeout.
	s.r.With(s.withSession).Get("/round/ws", s.handleWS)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error { return s.http.Shutdown(ctx) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ctxRoundKey is the context key type for the session's round id.
type ctxRoundKey struct{}

// withSession requires a valid session token and stores its round id in the context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := s.bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
		id, err := s.deps.Sessions.Verify(tok)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("rejected session token")
			writeError(w, http.StatusUnauthorized, "invalid_session")
			return
		}
		ctx := context.WithValue(r.Context(), ctxRoundKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// roundIDFrom returns the round id placed by withSession.
func roundIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRoundKey{}).(string)
	return id
}

// ------------------------------ session cookie -----------------------------

// setSessionCookie writes the session token cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Production,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

// sameSite is None in production (cross-site client, Secure cookie) and Lax otherwise.
func (s *Server) sameSite() http.SameSite {
	if s.opts.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// bearerOrCookie extracts a token from the Authorization header or the session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------- responses ---------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeStoreError maps store failures to responses.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "round_not_found")
		return
	}
	hlog.FromRequest(r).Error().Err(err).Str("roundId", roundIDFrom(r.Context())).Msg("round store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
