package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	UpsertFunc       func(ctx context.Context, c domain.MatchCandidate) (domain.MatchCandidate, domain.UpsertOutcome, error)
	MarkPromotedFunc func(ctx context.Context, id uuid.UUID) (bool, error)
	ListByReportFunc func(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			C   domain.MatchCandidate
		}
		MarkPromoted []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
			Limit    int
		}
	}
	lockUpsert       sync.RWMutex
	lockMarkPromoted sync.RWMutex
	lockListByReport sync.RWMutex
}

func (mock *candidateRepoMock) Upsert(ctx context.Context, c domain.MatchCandidate) (domain.MatchCandidate, domain.UpsertOutcome, error) {
	if mock.UpsertFunc == nil {
		panic("candidateRepoMock.UpsertFunc: method is nil but candidateRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.MatchCandidate
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *candidateRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	C   domain.MatchCandidate
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *candidateRepoMock) MarkPromoted(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.MarkPromotedFunc == nil {
		panic("candidateRepoMock.MarkPromotedFunc: method is nil but candidateRepo.MarkPromoted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkPromoted.Lock()
	mock.calls.MarkPromoted = append(mock.calls.MarkPromoted, callInfo)
	mock.lockMarkPromoted.Unlock()
	return mock.MarkPromotedFunc(ctx, id)
}

func (mock *candidateRepoMock) MarkPromotedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkPromoted.RLock()
	calls := mock.calls.MarkPromoted
	mock.lockMarkPromoted.RUnlock()
	return calls
}

func (mock *candidateRepoMock) ListByReport(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error) {
	if mock.ListByReportFunc == nil {
		panic("candidateRepoMock.ListByReportFunc: method is nil but candidateRepo.ListByReport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
		Limit    int
	}{Ctx: ctx, ReportID: reportID, Limit: limit}
	mock.lockListByReport.Lock()
	mock.calls.ListByReport = append(mock.calls.ListByReport, callInfo)
	mock.lockListByReport.Unlock()
	return mock.ListByReportFunc(ctx, reportID, limit)
}

func (mock *candidateRepoMock) ListByReportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
	Limit    int
} {
	mock.lockListByReport.RLock()
	calls := mock.calls.ListByReport
	mock.lockListByReport.RUnlock()
	return calls
}
