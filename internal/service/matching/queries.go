package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

const (
	defaultCandidateLimit = 20
	maxCandidateLimit     = 100
	defaultMatchLimit     = 50
	maxMatchLimit         = 200
)

// ---------------------------------------------------------------------------
// Read accessors
// ---------------------------------------------------------------------------

// ListReportCandidates returns the live candidates of a report owned by the caller.
func (s *Service) ListReportCandidates(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error) {
	if _, err := s.ownedReport(ctx, reportID); err != nil {
		return nil, err
	}
	return s.candidates.ListByReport(ctx, reportID, clampLimit(limit, maxCandidateLimit, defaultCandidateLimit))
}

// ListReportMatches returns the live matches of a report owned by the caller.
func (s *Service) ListReportMatches(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	if _, err := s.ownedReport(ctx, reportID); err != nil {
		return nil, err
	}
	return s.matches.ListByReport(ctx, reportID)
}

// ListMyMatches returns the matches involving any report of the caller.
func (s *Service) ListMyMatches(ctx context.Context, f domain.MatchListFilter) ([]domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid match status")
	}
	f.Limit = clampLimit(f.Limit, maxMatchLimit, defaultMatchLimit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.matches.ListByUser(ctx, userID, f)
}

// GetMatch returns a single match the caller is a party to.
func (s *Service) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	return s.partyMatch(ctx, matchID)
}

// ownedReport loads a report and checks that the caller owns it.
// Reports of other users are reported as not found.
func (s *Service) ownedReport(ctx context.Context, reportID uuid.UUID) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	r, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, fmt.Errorf("report %s: %w", reportID, domain.ErrNotFound)
	}
	return r, nil
}

// partyMatch loads a match and checks that the caller owns one of its reports.
func (s *Service) partyMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	lost, err := s.reports.GetByID(ctx, m.LostReportID)
	if err != nil {
		return nil, fmt.Errorf("get lost report: %w", err)
	}
	found, err := s.reports.GetByID(ctx, m.FoundReportID)
	if err != nil {
		return nil, fmt.Errorf("get found report: %w", err)
	}

	if lost.UserID != userID && found.UserID != userID {
		return nil, fmt.Errorf("match %s: %w", matchID, domain.ErrNotFound)
	}
	return m, nil
}
