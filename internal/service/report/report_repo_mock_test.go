package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc     func(ctx context.Context, r domain.Report) (*domain.Report, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	ReactivateFunc func(ctx context.Context, ids ...uuid.UUID) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			R   domain.Report
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		Reactivate []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockReactivate sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, r domain.Report) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.Report
	}{Ctx: ctx, R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	R   domain.Report
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.SoftDeleteFunc == nil {
		panic("reportRepoMock.SoftDeleteFunc: method is nil but reportRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, at)
}

func (mock *reportRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *reportRepoMock) Reactivate(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if mock.ReactivateFunc == nil {
		panic("reportRepoMock.ReactivateFunc: method is nil but reportRepo.Reactivate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockReactivate.Lock()
	mock.calls.Reactivate = append(mock.calls.Reactivate, callInfo)
	mock.lockReactivate.Unlock()
	return mock.ReactivateFunc(ctx, ids...)
}

func (mock *reportRepoMock) ReactivateCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockReactivate.RLock()
	calls := mock.calls.Reactivate
	mock.lockReactivate.RUnlock()
	return calls
}
