// Package app wires configuration, storage and services into runnable
// processes.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/config"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/middleware"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, wires the
// services, starts the notification workers and serves HTTP until ctx is
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
		slog.String("extractor", cfg.Extractor.Driver),
		slog.String("notifier", cfg.Notification.Driver),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	c.Dispatcher.Start(ctx)

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, c, logger, limiter)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler builds the full HTTP stack over the wired services.
func newHandler(cfg *config.Config, c *Components, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	return rest.NewRouter(rest.Routes{
		Reports: rest.NewReportHandler(c.Reports, c.Matching, logger),
		Matches: rest.NewMatchHandler(c.Matching, logger),
		Health:  rest.NewHealthHandler(c.Pool, c.Dispatcher, Version),
		Loaders: c.Loaders,
		Global: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.CORS(cfg.CORS),
			middleware.Auth(c.Tokens),
			// Inside Auth so the access log carries the user ID.
			middleware.Logger(logger, "/live", "/ready"),
		},
		Writes: []middleware.Middleware{
			limiter.Limit(cfg.Server.WriteRateLimit),
		},
	})
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}
