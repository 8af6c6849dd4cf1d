package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// UpdateMatchStatus
// ---------------------------------------------------------------------------

// UpdateMatchStatus moves a match along its state machine on behalf of one
// of its owners. Rejecting a match returns both reports to ACTIVE unless
// another live match holds them; resolving it closes both reports.
func (s *Service) UpdateMatchStatus(ctx context.Context, in UpdateStatusInput) (*domain.Match, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.partyMatch(ctx, in.MatchID)
	if err != nil {
		return nil, err
	}

	if m.Status == in.Status {
		return m, nil
	}
	if !m.Status.CanTransitionTo(in.Status) {
		return nil, domain.NewTransitionError(m.Status, in.Status)
	}

	var updated *domain.Match
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.matches.UpdateStatus(txCtx, m.ID, m.Status, in.Status)
		if err != nil {
			return err
		}

		switch in.Status {
		case domain.MatchStatusRejected:
			_, err = s.reports.Reactivate(txCtx, m.LostReportID, m.FoundReportID)
		case domain.MatchStatusResolved:
			_, err = s.reports.Close(txCtx, m.LostReportID, m.FoundReportID)
		}
		if err != nil {
			return fmt.Errorf("update report status: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMatch,
			EntityID:   &m.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"status": map[string]any{"old": m.Status.String(), "new": in.Status.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "match status updated",
		slog.String("user_id", userID.String()),
		slog.String("match_id", m.ID.String()),
		slog.String("from", m.Status.String()),
		slog.String("to", updated.Status.String()),
	)
	return updated, nil
}
