package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres/audit"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres/candidate"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres/match"
	reportrepo "github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/postgres/report"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/provider/features"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/provider/lognotify"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/adapter/provider/webhook"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/auth"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/config"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/notify"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/report"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/transport/dataloader"
)

// Components holds the wired services shared by the server and the CLI.
type Components struct {
	Pool       *pgxpool.Pool
	Dispatcher *notify.Dispatcher
	Matching   *matching.Service
	Reports    *report.Service
	Tokens     *auth.JWTManager
	Loaders    *dataloader.Repos
}

// Build connects to the database and wires every service. The dispatcher
// is created but not started. Call Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return wire(pool, cfg, logger), nil
}

func wire(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *Components {
	txm := postgres.NewTxManager(pool)
	reports := reportrepo.New(pool)
	candidates := candidate.New(pool)
	matches := match.New(pool)
	auditRepo := audit.New(pool)

	dispatcher := notify.NewDispatcher(
		logger,
		matches,
		newSender(cfg.Notification, logger),
		cfg.Notification.Workers,
		cfg.Notification.QueueSize,
	)

	matchingSvc := matching.NewService(
		logger, reports, candidates, matches, auditRepo, txm, dispatcher, cfg.Matching.Policy(),
	)
	reportSvc := report.NewService(
		logger, reports, candidates, matches, newExtractor(cfg.Extractor, logger), matchingSvc, auditRepo, txm,
	)

	return &Components{
		Pool:       pool,
		Dispatcher: dispatcher,
		Matching:   matchingSvc,
		Reports:    reportSvc,
		Tokens:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Loaders:    &dataloader.Repos{Report: reports},
	}
}

// Close drains the dispatcher and closes the pool.
func (c *Components) Close() {
	c.Dispatcher.Close()
	c.Pool.Close()
}

type extractor interface {
	Extract(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error)
}

func newExtractor(cfg config.ExtractorConfig, logger *slog.Logger) extractor {
	if cfg.Driver == "http" {
		return features.NewHTTPExtractor(cfg.BaseURL, cfg.Timeout, logger)
	}
	return features.NewHashingExtractor(cfg.Dimensions)
}

type sender interface {
	Notify(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error
}

// newSender falls back to the log sender when notifications are disabled so
// that matches are still claimed and recorded.
func newSender(cfg config.NotificationConfig, logger *slog.Logger) sender {
	if cfg.Enabled && cfg.Driver == "webhook" {
		return webhook.NewSender(cfg.WebhookURL, cfg.Timeout, logger)
	}
	return lognotify.NewSender(logger)
}
