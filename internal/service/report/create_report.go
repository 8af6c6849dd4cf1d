package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// CreateReport
// ---------------------------------------------------------------------------

// CreateReport persists a new report for the caller and runs matching for it.
// Feature extraction and matching are best-effort: their failures are logged
// and never undo the report.
func (s *Service) CreateReport(ctx context.Context, in CreateReportInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	rep := in.toReport(uuid.New(), userID, s.now())
	rep.Features = s.extract(ctx, rep)

	var created *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.reports.Create(txCtx, rep)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReport,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"type":     map[string]any{"new": string(created.Type)},
				"category": map[string]any{"new": string(created.Category)},
				"title":    map[string]any{"new": created.Title},
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

	s.log.InfoContext(ctx, "report created",
		slog.String("user_id", userID.String()),
		slog.String("report_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("category", created.Category.String()),
	)

	res, err := s.matcher.ScoreAndPromote(ctxutil.WithTrigger(ctx, ctxutil.TriggerReportCreated), created.ID)
	if err != nil {
		s.log.WarnContext(ctx, "matching failed for new report",
			slog.String("report_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
		return &CreateResult{Report: created}, nil
	}

	return &CreateResult{Report: created, Matching: res}, nil
}

// extract derives the report's features. An extractor failure yields empty
// features so the report still persists and scores on location and date.
func (s *Service) extract(ctx context.Context, rep domain.Report) domain.Features {
	text := strings.TrimSpace(rep.Title + " " + rep.Description)
	f, err := s.extractor.Extract(ctx, text, rep.ImageRef, rep.Location.Text())
	if err != nil {
		s.log.WarnContext(ctx, "feature extraction failed",
			slog.String("report_id", rep.ID.String()),
			slog.String("error", err.Error()),
		)
		return domain.Features{}
	}
	return f
}
