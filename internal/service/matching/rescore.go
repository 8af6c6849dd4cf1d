package matching

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/pkg/ctxutil"
)

const defaultRescoreConcurrency = 4

// ---------------------------------------------------------------------------
// Rescore
// ---------------------------------------------------------------------------

// Rescore runs ScoreAndPromote for every active report. Failures of single
// reports are logged and counted; only listing failures or cancellation
// abort the run.
func (s *Service) Rescore(ctx context.Context, in RescoreInput) (*RescoreResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ids, err := s.reports.ListActiveIDs(ctx, in.Category)
	if err != nil {
		return nil, fmt.Errorf("list active reports: %w", err)
	}

	concurrency := in.Concurrency
	if concurrency == 0 {
		concurrency = defaultRescoreConcurrency
	}

	var (
		mu  sync.Mutex
		out = &RescoreResult{}
	)

	g, gctx := errgroup.WithContext(ctxutil.WithTrigger(ctx, ctxutil.TriggerRescore))
	g.SetLimit(concurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := s.ScoreAndPromote(gctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed++
				s.log.ErrorContext(gctx, "rescore report failed",
					slog.String("report_id", id.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			out.add(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	s.log.InfoContext(ctx, "rescore completed",
		slog.Int("reports", out.Reports),
		slog.Int("failed", out.Failed),
		slog.Int("matches_promoted", out.MatchesPromoted),
	)
	return out, nil
}
