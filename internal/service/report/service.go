// Package report manages the lifecycle of lost and found reports.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
)

type reportRepo interface {
	Create(ctx context.Context, r domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	Reactivate(ctx context.Context, ids ...uuid.UUID) (int64, error)
}

type candidateRepo interface {
	SoftDeleteByReport(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error)
}

type matchRepo interface {
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	SoftDeleteByReport(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error)
}

type extractor interface {
	Extract(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error)
}

type matcher interface {
	ScoreAndPromote(ctx context.Context, reportID uuid.UUID) (*matching.Result, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides report creation and deletion.
type Service struct {
	reports    reportRepo
	candidates candidateRepo
	matches    matchRepo
	extractor  extractor
	matcher    matcher
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Report service.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	candidates candidateRepo,
	matches matchRepo,
	extractor extractor,
	matcher matcher,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		reports:    reports,
		candidates: candidates,
		matches:    matches,
		extractor:  extractor,
		matcher:    matcher,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "report"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreateResult is the outcome of CreateReport. Matching is nil when the
// matching run failed; the report is persisted either way.
type CreateResult struct {
	Report   *domain.Report
	Matching *matching.Result
}
