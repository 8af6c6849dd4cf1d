package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching/scoring"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// ScoreAndPromote
// ---------------------------------------------------------------------------

// ScoreAndPromote runs the full pipeline for one report:
//
//  1. fetch eligible opposite reports
//  2. score every pair and drop those under the candidate threshold
//  3. rank and cap at MaxCandidatesPerItem
//  4. upsert each candidate
//  5. promote candidates at or above the promotion threshold
//  6. enqueue one notification per newly created match
//
// A report that is not ACTIVE yields an empty result. Matches committed
// before an error are still enqueued.
func (s *Service) ScoreAndPromote(ctx context.Context, reportID uuid.UUID) (*Result, error) {
	res := &Result{ReportID: reportID, TopExposed: []domain.MatchCandidate{}}

	r, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	if !r.IsActive() {
		s.log.DebugContext(ctx, "report not active, skipping matching",
			slog.String("report_id", reportID.String()),
			slog.String("status", r.Status.String()),
		)
		return res, nil
	}

	cp, ok := s.policy.For(r.Category)
	if !ok {
		return nil, domain.NewValidationError("category", "no matching policy for "+r.Category.String())
	}

	others, err := s.reports.FindEligible(ctx, domain.NewEligibilityFilter(*r, s.policy))
	if err != nil {
		return nil, fmt.Errorf("find eligible: %w", err)
	}

	ranked := rankCandidates(
		scorePairs(*r, others, scoring.ParamsFor(s.policy, cp), cp),
		s.policy.MaxCandidatesPerItem,
	)

	var targets []domain.NotificationTarget
	defer func() { s.enqueue(ctx, targets) }()

	for _, sp := range ranked {
		cand, outcome, err := s.candidates.Upsert(ctx, sp.toCandidate())
		if err != nil {
			return nil, fmt.Errorf("upsert candidate: %w", err)
		}
		switch outcome {
		case domain.UpsertCreated:
			res.CandidatesCreated++
		case domain.UpsertUpdated:
			res.CandidatesUpdated++
		case domain.UpsertUnchanged:
			continue
		}

		if cand.AggregateScore.GreaterThanOrEqual(cp.PromotionThreshold) {
			m, created, err := s.promote(ctx, cand)
			if err != nil {
				return nil, fmt.Errorf("promote candidate %s: %w", cand.ID, err)
			}
			if created {
				res.MatchesPromoted++
				res.Matches = append(res.Matches, m)
				targets = append(targets, newTarget(m, sp.pair))
			}
			continue
		}

		if len(res.TopExposed) < s.policy.TopNExpose {
			res.TopExposed = append(res.TopExposed, cand)
		}
	}

	s.log.InfoContext(ctx, "matching completed",
		slog.String("report_id", reportID.String()),
		slog.String("trigger", string(ctxutil.TriggerFromCtx(ctx))),
		slog.String("category", r.Category.String()),
		slog.Int("eligible", len(others)),
		slog.Int("ranked", len(ranked)),
		slog.Int("candidates_created", res.CandidatesCreated),
		slog.Int("candidates_updated", res.CandidatesUpdated),
		slog.Int("matches_promoted", res.MatchesPromoted),
	)

	return res, nil
}

// promote turns a candidate into a match in a single transaction: insert the
// match, mark the candidate promoted and move both reports to MATCHED.
// created is false when the pair already had a match.
func (s *Service) promote(ctx context.Context, cand domain.MatchCandidate) (domain.Match, bool, error) {
	var (
		m       domain.Match
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		m, created, err = s.matches.Create(txCtx, domain.Match{
			ID:            uuid.New(),
			CandidateID:   cand.ID,
			LostReportID:  cand.LostReportID,
			FoundReportID: cand.FoundReportID,
			Confidence:    cand.AggregateScore,
			Status:        domain.MatchStatusPending,
			Explanation:   cand.Explanation.Summary(),
			CreatedAt:     s.now(),
		})
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}

		if _, err := s.candidates.MarkPromoted(txCtx, cand.ID); err != nil {
			return fmt.Errorf("mark promoted: %w", err)
		}

		if created {
			if _, err := s.reports.MarkMatched(txCtx, cand.LostReportID, cand.FoundReportID); err != nil {
				return fmt.Errorf("mark reports matched: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Match{}, false, err
	}

	if created {
		s.log.InfoContext(ctx, "match promoted",
			slog.String("match_id", m.ID.String()),
			slog.String("lost_report_id", m.LostReportID.String()),
			slog.String("found_report_id", m.FoundReportID.String()),
			slog.String("confidence", m.Confidence.StringFixed(2)),
		)
	}
	return m, created, nil
}

// enqueue hands newly created matches to the dispatcher. A full queue is
// logged; the pending sweep picks those matches up later.
func (s *Service) enqueue(ctx context.Context, targets []domain.NotificationTarget) {
	for _, t := range targets {
		if !s.dispatcher.Enqueue(t) {
			s.log.WarnContext(ctx, "notification queue full, deferring to sweep",
				slog.String("match_id", t.Match.ID.String()),
			)
		}
	}
}

func newTarget(m domain.Match, pair domain.ReportPair) domain.NotificationTarget {
	return domain.NotificationTarget{
		Match:       m,
		Category:    pair.Lost.Category,
		LostUserID:  pair.Lost.UserID,
		LostTitle:   pair.Lost.Title,
		FoundUserID: pair.Found.UserID,
		FoundTitle:  pair.Found.Title,
	}
}

// MatchReport re-runs matching for a report owned by the caller.
func (s *Service) MatchReport(ctx context.Context, reportID uuid.UUID) (*Result, error) {
	if reportID == uuid.Nil {
		return nil, domain.NewValidationError("report_id", "required")
	}
	if _, err := s.ownedReport(ctx, reportID); err != nil {
		return nil, err
	}
	return s.ScoreAndPromote(ctx, reportID)
}

// ---------------------------------------------------------------------------
// NotifyPending
// ---------------------------------------------------------------------------

// NotifyPending delivers every match whose notification was never claimed.
// Delivery still goes through the atomic claim, so a match enqueued
// concurrently is sent once. Returns the number of matches attempted, also
// when ctx is cancelled part way.
func (s *Service) NotifyPending(ctx context.Context, limit int) (int, error) {
	targets, err := s.matches.ListUnnotified(ctx, clampLimit(limit, 10000, 500))
	if err != nil {
		return 0, fmt.Errorf("list unnotified: %w", err)
	}

	var (
		attempted, failed int
		errs              []error
	)
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		attempted++
		if err := s.dispatcher.Deliver(ctx, t); err != nil {
			failed++
			errs = append(errs, fmt.Errorf("match %s: %w", t.Match.ID, err))
		}
	}

	s.log.InfoContext(ctx, "pending notifications swept",
		slog.Int("pending", len(targets)),
		slog.Int("attempted", attempted),
		slog.Int("failed", failed),
	)
	return attempted, errors.Join(errs...)
}
