package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nickofolas/wdle/internal/config"
	"github.com/nickofolas/wdle/internal/daily"
	"github.com/nickofolas/wdle/internal/game"
	"github.com/nickofolas/wdle/internal/httpserver"
	"github.com/nickofolas/wdle/internal/session"
	"github.com/nickofolas/wdle/internal/store"
	"github.com/nickofolas/wdle/internal/words"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP/WebSocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "Listen port (env: PORT)")
	cmd.Flags().StringVar(&cfg.Store, "store", cfg.Store, "Round store: memory, redis (env: STORE)")
	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "Attempts per round (env: ROUND_ROWS)")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lists, err := words.Load(cfg.Words)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}
	sc, gc := lists.Stats()
	log.Info().Int("secrets", sc).Int("guesses", gc).Msg("word lists loaded")

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SessionSecret == config.DefaultSessionSecret {
		if cfg.Production {
			return errors.New("SESSION_SECRET must be set in production")
		}
		log.Warn().Msg("using the development session secret")
	}
	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}

	srv := httpserver.New(httpserver.Deps{
		Store:    st,
		Sessions: sessions,
		Lists:    lists,
		Drawers: map[string]game.Drawer{
			game.ModeRandom: words.NewRandomDrawer(lists, nil),
			game.ModeDaily:  daily.NewDrawer(lists, cfg.DailySalt, nil),
		},
	}, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		CookieName:   cfg.CookieName,
		Production:   cfg.Production,
		Rows:         cfg.Rows,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting server")
		errCh <- srv.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// openStore builds the configured round store and its cleanup func.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(cfg.RoundTTL), func() {}, nil
	case config.StoreRedis:
		rc := store.DefaultRedisConfig()
		rc.URL = cfg.RedisURL
		rc.RoundTTL = cfg.RoundTTL
		rs, err := store.NewRedisStore(ctx, rc)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() {
			if err := rs.Close(); err != nil {
				log.Warn().Err(err).Msg("close redis")
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
