package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindEligibleFunc  func(ctx context.Context, f domain.EligibilityFilter) ([]domain.Report, error)
	MarkMatchedFunc   func(ctx context.Context, ids ...uuid.UUID) (int64, error)
	ReactivateFunc    func(ctx context.Context, ids ...uuid.UUID) (int64, error)
	CloseFunc         func(ctx context.Context, ids ...uuid.UUID) (int64, error)
	ListActiveIDsFunc func(ctx context.Context, category *domain.Category) ([]uuid.UUID, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindEligible []struct {
			Ctx context.Context
			F   domain.EligibilityFilter
		}
		MarkMatched []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		Reactivate []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		Close []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
		ListActiveIDs []struct {
			Ctx      context.Context
			Category *domain.Category
		}
	}
	lockGetByID       sync.RWMutex
	lockFindEligible  sync.RWMutex
	lockMarkMatched   sync.RWMutex
	lockReactivate    sync.RWMutex
	lockClose         sync.RWMutex
	lockListActiveIDs sync.RWMutex
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

func (mock *reportRepoMock) FindEligible(ctx context.Context, f domain.EligibilityFilter) ([]domain.Report, error) {
	if mock.FindEligibleFunc == nil {
		panic("reportRepoMock.FindEligibleFunc: method is nil but reportRepo.FindEligible was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.EligibilityFilter
	}{Ctx: ctx, F: f}
	mock.lockFindEligible.Lock()
	mock.calls.FindEligible = append(mock.calls.FindEligible, callInfo)
	mock.lockFindEligible.Unlock()
	return mock.FindEligibleFunc(ctx, f)
}

func (mock *reportRepoMock) FindEligibleCalls() []struct {
	Ctx context.Context
	F   domain.EligibilityFilter
} {
	mock.lockFindEligible.RLock()
	calls := mock.calls.FindEligible
	mock.lockFindEligible.RUnlock()
	return calls
}

func (mock *reportRepoMock) MarkMatched(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if mock.MarkMatchedFunc == nil {
		panic("reportRepoMock.MarkMatchedFunc: method is nil but reportRepo.MarkMatched was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockMarkMatched.Lock()
	mock.calls.MarkMatched = append(mock.calls.MarkMatched, callInfo)
	mock.lockMarkMatched.Unlock()
	return mock.MarkMatchedFunc(ctx, ids...)
}

func (mock *reportRepoMock) MarkMatchedCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockMarkMatched.RLock()
	calls := mock.calls.MarkMatched
	mock.lockMarkMatched.RUnlock()
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

func (mock *reportRepoMock) Close(ctx context.Context, ids ...uuid.UUID) (int64, error) {
	if mock.CloseFunc == nil {
		panic("reportRepoMock.CloseFunc: method is nil but reportRepo.Close was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, ids...)
}

func (mock *reportRepoMock) CloseCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

func (mock *reportRepoMock) ListActiveIDs(ctx context.Context, category *domain.Category) ([]uuid.UUID, error) {
	if mock.ListActiveIDsFunc == nil {
		panic("reportRepoMock.ListActiveIDsFunc: method is nil but reportRepo.ListActiveIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.Category
	}{Ctx: ctx, Category: category}
	mock.lockListActiveIDs.Lock()
	mock.calls.ListActiveIDs = append(mock.calls.ListActiveIDs, callInfo)
	mock.lockListActiveIDs.Unlock()
	return mock.ListActiveIDsFunc(ctx, category)
}

func (mock *reportRepoMock) ListActiveIDsCalls() []struct {
	Ctx      context.Context
	Category *domain.Category
} {
	mock.lockListActiveIDs.RLock()
	calls := mock.calls.ListActiveIDs
	mock.lockListActiveIDs.RUnlock()
	return calls
}
