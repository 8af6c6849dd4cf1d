// Package lognotify is a notification sender that only writes log records.
package lognotify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// Sender logs every notification at info level.
type Sender struct {
	log *slog.Logger
}

// NewSender creates a new log sender.
func NewSender(logger *slog.Logger) *Sender {
	return &Sender{log: logger.With("adapter", "lognotify")}
}

// Notify never fails.
func (s *Sender) Notify(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error {
	s.log.InfoContext(ctx, "match notification",
		slog.String("user_id", userID.String()),
		slog.String("match_id", summary.MatchID.String()),
		slog.String("report_id", summary.ReportID.String()),
		slog.String("other_report_id", summary.OtherReportID.String()),
		slog.String("category", summary.Category.String()),
		slog.String("confidence", summary.Confidence.StringFixed(2)),
		slog.String("explanation", summary.Explanation),
	)
	return nil
}
