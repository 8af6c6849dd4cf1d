package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Report by ID (nullable: deleted reports load as nil)
// ---------------------------------------------------------------------------

func newReportBatchFn(repo reportRepo) dataloader.BatchFunc[uuid.UUID, *domain.Report] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Report] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Report](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Report, len(rows))
		for i := range rows {
			r := rows[i]
			byID[r.ID] = &r
		}

		results := make([]*dataloader.Result[*domain.Report], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Report]{Data: byID[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
