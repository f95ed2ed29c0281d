package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/devtrack-inbox/internal/config"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/middleware"
	"github.com/heartmarshall/devtrack-inbox/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health *rest.HealthHandler
	Inbox  *rest.InboxHandler
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// NewRouter mounts the probes and the feed endpoint. Every route passes
// through Recovery, RequestID, Logger and CORS; the feed additionally
// resolves the caller and, when configured, is rate limited per caller.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h Handlers,
	validator tokenValidator,
	limiter *middleware.RateLimiter,
) http.Handler {
	feed := []middleware.Middleware{middleware.Auth(validator)}
	if limiter != nil && cfg.Server.RateLimitPerMinute > 0 {
		feed = append(feed, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /inbox", middleware.Chain(feed...)(http.HandlerFunc(h.Inbox.List)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// for at most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	logger.Info("http server listening", slog.String("addr", srv.Addr))
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
