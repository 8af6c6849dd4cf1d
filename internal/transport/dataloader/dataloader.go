// Package dataloader provides per-request loaders that batch the report
// lookups made while rendering a list of matches into one SQL call.
// Loaders call the repository directly; callers only pass ids of reports
// the service layer has already authorized.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type reportRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Report, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Report reportRepo
}

// Loaders contains the per-request loaders. Created per request via NewLoaders.
type Loaders struct {
	ReportByID *dataloader.Loader[uuid.UUID, *domain.Report]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
// Loaders cache results, so a set must not outlive its request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ReportByID: newLoader(newReportBatchFn(repos.Report)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present: the middleware is not mounted.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware mounted?")
	}
	return l
}
