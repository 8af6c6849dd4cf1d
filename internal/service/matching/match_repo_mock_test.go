package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	CreateFunc         func(ctx context.Context, m domain.Match) (domain.Match, bool, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	ListByReportFunc   func(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID, f domain.MatchListFilter) ([]domain.Match, error)
	ListUnnotifiedFunc func(ctx context.Context, limit int) ([]domain.NotificationTarget, error)
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, from domain.MatchStatus, to domain.MatchStatus) (*domain.Match, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   domain.Match
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.MatchListFilter
		}
		ListUnnotified []struct {
			Ctx   context.Context
			Limit int
		}
		UpdateStatus []struct {
			Ctx  context.Context
			ID   uuid.UUID
			From domain.MatchStatus
			To   domain.MatchStatus
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockListByReport   sync.RWMutex
	lockListByUser     sync.RWMutex
	lockListUnnotified sync.RWMutex
	lockUpdateStatus   sync.RWMutex
}

func (mock *matchRepoMock) Create(ctx context.Context, m domain.Match) (domain.Match, bool, error) {
	if mock.CreateFunc == nil {
		panic("matchRepoMock.CreateFunc: method is nil but matchRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.Match
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *matchRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   domain.Match
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *matchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	if mock.GetByIDFunc == nil {
		panic("matchRepoMock.GetByIDFunc: method is nil but matchRepo.GetByID was just called")
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

func (mock *matchRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	if mock.ListByReportFunc == nil {
		panic("matchRepoMock.ListByReportFunc: method is nil but matchRepo.ListByReport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockListByReport.Lock()
	mock.calls.ListByReport = append(mock.calls.ListByReport, callInfo)
	mock.lockListByReport.Unlock()
	return mock.ListByReportFunc(ctx, reportID)
}

func (mock *matchRepoMock) ListByReportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockListByReport.RLock()
	calls := mock.calls.ListByReport
	mock.lockListByReport.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, f domain.MatchListFilter) ([]domain.Match, error) {
	if mock.ListByUserFunc == nil {
		panic("matchRepoMock.ListByUserFunc: method is nil but matchRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.MatchListFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, f)
}

func (mock *matchRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.MatchListFilter
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListUnnotified(ctx context.Context, limit int) ([]domain.NotificationTarget, error) {
	if mock.ListUnnotifiedFunc == nil {
		panic("matchRepoMock.ListUnnotifiedFunc: method is nil but matchRepo.ListUnnotified was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListUnnotified.Lock()
	mock.calls.ListUnnotified = append(mock.calls.ListUnnotified, callInfo)
	mock.lockListUnnotified.Unlock()
	return mock.ListUnnotifiedFunc(ctx, limit)
}

func (mock *matchRepoMock) ListUnnotifiedCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListUnnotified.RLock()
	calls := mock.calls.ListUnnotified
	mock.lockListUnnotified.RUnlock()
	return calls
}

func (mock *matchRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, from domain.MatchStatus, to domain.MatchStatus) (*domain.Match, error) {
	if mock.UpdateStatusFunc == nil {
		panic("matchRepoMock.UpdateStatusFunc: method is nil but matchRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		From domain.MatchStatus
		To   domain.MatchStatus
	}{Ctx: ctx, ID: id, From: from, To: to}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, from, to)
}

func (mock *matchRepoMock) UpdateStatusCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	From domain.MatchStatus
	To   domain.MatchStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
