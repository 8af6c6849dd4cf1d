package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// DeleteReport
// ---------------------------------------------------------------------------

// DeleteReport soft-deletes a report of the caller together with its
// candidates and matches. Counterpart reports held by those matches return
// to ACTIVE unless another live match still holds them.
func (s *Service) DeleteReport(ctx context.Context, in DeleteReportInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return err
	}

	rep, err := s.reports.GetByID(ctx, in.ReportID)
	if err != nil {
		return err
	}
	if rep.UserID != userID {
		return fmt.Errorf("report %s: %w", in.ReportID, domain.ErrNotFound)
	}

	now := s.now()
	var removedMatches, removedCandidates int64

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		live, err := s.matches.ListByReport(txCtx, rep.ID)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		counterparts := counterpartIDs(rep.ID, live)

		if err := s.reports.SoftDelete(txCtx, rep.ID, now); err != nil {
			return fmt.Errorf("delete report: %w", err)
		}
		removedCandidates, err = s.candidates.SoftDeleteByReport(txCtx, rep.ID, now)
		if err != nil {
			return fmt.Errorf("delete candidates: %w", err)
		}
		removedMatches, err = s.matches.SoftDeleteByReport(txCtx, rep.ID, now)
		if err != nil {
			return fmt.Errorf("delete matches: %w", err)
		}

		if len(counterparts) > 0 {
			if _, err := s.reports.Reactivate(txCtx, counterparts...); err != nil {
				return fmt.Errorf("reactivate counterparts: %w", err)
			}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReport,
			EntityID:   &rep.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"status":  map[string]any{"old": string(rep.Status)},
				"matches": removedMatches,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "report deleted",
		slog.String("user_id", userID.String()),
		slog.String("report_id", rep.ID.String()),
		slog.Int64("candidates", removedCandidates),
		slog.Int64("matches", removedMatches),
	)

	return nil
}

// counterpartIDs returns the other side of each match, without duplicates.
// Matches that are already resolved keep their counterpart closed.
func counterpartIDs(reportID uuid.UUID, matches []domain.Match) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(matches))
	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		if m.Status == domain.MatchStatusResolved {
			continue
		}
		other := m.FoundReportID
		if other == reportID {
			other = m.LostReportID
		}
		if seen[other] {
			continue
		}
		seen[other] = true
		ids = append(ids, other)
	}
	return ids
}
