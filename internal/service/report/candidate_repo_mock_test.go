package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	SoftDeleteByReportFunc func(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error)

	calls struct {
		SoftDeleteByReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
			At       time.Time
		}
	}
	lockSoftDeleteByReport sync.RWMutex
}

func (mock *candidateRepoMock) SoftDeleteByReport(ctx context.Context, reportID uuid.UUID, at time.Time) (int64, error) {
	if mock.SoftDeleteByReportFunc == nil {
		panic("candidateRepoMock.SoftDeleteByReportFunc: method is nil but candidateRepo.SoftDeleteByReport was just called")
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

func (mock *candidateRepoMock) SoftDeleteByReportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
	At       time.Time
} {
	mock.lockSoftDeleteByReport.RLock()
	calls := mock.calls.SoftDeleteByReport
	mock.lockSoftDeleteByReport.RUnlock()
	return calls
}
