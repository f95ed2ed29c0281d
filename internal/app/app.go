package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres"
	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres/entity"
	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres/note"
	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres/qa"
	"github.com/heartmarshall/devtrack-inbox/internal/adapter/postgres/user"
	"github.com/heartmarshall/devtrack-inbox/internal/auth"
	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/service/inbox"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/middleware"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the feed service behind the HTTP surface and serves
// until ctx is cancelled.
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
		return err
	}
	defer pool.Close()

	svc := NewInboxService(logger, pool, cfg.Inbox)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := NewRouter(logger, cfg, Handlers{
		Health: rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Target: pool}),
		Inbox:  rest.NewInboxHandler(svc, logger),
	}, verifier, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if err := serve(ctx, logger, srv, cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("application stopped")
	return nil
}

// NewInboxService builds the feed service over the PostgreSQL stores.
func NewInboxService(logger *slog.Logger, q postgres.Querier, cfg config.InboxConfig) *inbox.Service {
	return inbox.NewService(logger, inbox.Repos{
		Notes:          note.New(q),
		KeyDevAnswers:  qa.New(q, qa.KeyDevTables),
		CoreAppAnswers: qa.New(q, qa.CoreAppTables),
		KeyDevs:        entity.New(q, entity.KeyDevTable),
		CoreApps:       entity.New(q, entity.CoreAppTable),
		Users:          user.New(q),
	}, cfg)
}
