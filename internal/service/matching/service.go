// Package matching generates, scores and promotes lost/found match candidates.
package matching

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reportRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindEligible(ctx context.Context, f domain.EligibilityFilter) ([]domain.Report, error)
	MarkMatched(ctx context.Context, ids ...uuid.UUID) (int64, error)
	Reactivate(ctx context.Context, ids ...uuid.UUID) (int64, error)
	Close(ctx context.Context, ids ...uuid.UUID) (int64, error)
	ListActiveIDs(ctx context.Context, category *domain.Category) ([]uuid.UUID, error)
}

type candidateRepo interface {
	Upsert(ctx context.Context, c domain.MatchCandidate) (domain.MatchCandidate, domain.UpsertOutcome, error)
	MarkPromoted(ctx context.Context, id uuid.UUID) (bool, error)
	ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error)
}

type matchRepo interface {
	Create(ctx context.Context, m domain.Match) (domain.Match, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	ListByUser(ctx context.Context, userID uuid.UUID, f domain.MatchListFilter) ([]domain.Match, error)
	ListUnnotified(ctx context.Context, limit int) ([]domain.NotificationTarget, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.MatchStatus) (*domain.Match, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type dispatcher interface {
	Enqueue(t domain.NotificationTarget) bool
	Deliver(ctx context.Context, t domain.NotificationTarget) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs the candidate generator, the scoring engine and the
// threshold and promotion gate. It keeps no state between calls.
type Service struct {
	log        *slog.Logger
	reports    reportRepo
	candidates candidateRepo
	matches    matchRepo
	audit      auditLogger
	tx         txManager
	dispatcher dispatcher
	policy     domain.MatchingPolicy
	now        func() time.Time
}

// NewService creates a new matching service. policy must already be validated.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	candidates candidateRepo,
	matches matchRepo,
	audit auditLogger,
	tx txManager,
	dispatcher dispatcher,
	policy domain.MatchingPolicy,
) *Service {
	return &Service{
		log:        logger.With("service", "matching"),
		reports:    reports,
		candidates: candidates,
		matches:    matches,
		audit:      audit,
		tx:         tx,
		dispatcher: dispatcher,
		policy:     policy,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Policy returns the policy the service runs with.
func (s *Service) Policy() domain.MatchingPolicy { return s.policy }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
