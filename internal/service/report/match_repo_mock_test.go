package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	ListByReportFunc       func(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	SoftDeleteByReportFunc func(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error)

	calls struct {
		ListByReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		SoftDeleteByReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
			At       time.Time
		}
	}
	lockListByReport       sync.RWMutex
	lockSoftDeleteByReport sync.RWMutex
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

func (mock *matchRepoMock) SoftDeleteByReport(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error) {
	if mock.SoftDeleteByReportFunc == nil {
		panic("matchRepoMock.SoftDeleteByReportFunc: method is nil but matchRepo.SoftDeleteByReport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
		At       time.Time
	}{Ctx: ctx, ReportID: reportID, At: at}
	mock.lockSoftDeleteByReport.Lock()
	mock.calls.SoftDeleteByReport = append(mock.calls.SoftDeleteByReport, callInfo)
	mock.lockSoftDeleteByReport.Unlock()
	return mock.SoftDeleteByReportFunc(ctx, reportID, at)
}

func (mock *matchRepoMock) SoftDeleteByReportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
	At       time.Time
} {
	mock.lockSoftDeleteByReport.RLock()
	calls := mock.calls.SoftDeleteByReport
	mock.lockSoftDeleteByReport.RUnlock()
	return calls
}
