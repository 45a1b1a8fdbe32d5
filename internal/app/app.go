// Package app wires configuration, storage, services, and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/card"
	deckrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/deck"
	sessionlogrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/sessionlog"
	tokenrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashdeck-backend/internal/auth"
	"github.com/heartmarshall/flashdeck-backend/internal/config"
	authservice "github.com/heartmarshall/flashdeck-backend/internal/service/auth"
	deckservice "github.com/heartmarshall/flashdeck-backend/internal/service/deck"
	sessionservice "github.com/heartmarshall/flashdeck-backend/internal/service/session"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)
	sessionLogs := sessionlogrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	deckSvc := deckservice.NewService(logger, decks, cards, txManager)
	sessionSvc := sessionservice.NewService(logger, cards, decks, sessionLogs, txManager, sessionservice.Config{
		HistorySize:   cfg.Session.HistorySize,
		OverviewLimit: cfg.Session.OverviewLimit,
	})

	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authSvc, jwtManager, logger),
		Deck:    rest.NewDeckHandler(deckSvc, logger),
		Card:    rest.NewCardHandler(deckSvc, logger),
		Session: rest.NewSessionHandler(sessionSvc, deckSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	globals := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMin > 0 {
		limiter = middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		globals = append(globals, limiter.Limit(cfg.Server.RateLimitPerMin))
	}

	router := rest.NewRouter(handlers, middleware.Chain(globals...), middleware.Auth(jwtManager))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
