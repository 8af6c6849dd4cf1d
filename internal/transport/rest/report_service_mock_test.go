package rest

import (
	"context"
	"sync"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	CreateReportFunc func(ctx context.Context, in report.CreateReportInput) (*report.CreateResult, error)
	DeleteReportFunc func(ctx context.Context, in report.DeleteReportInput) error

	calls struct {
		CreateReport []struct {
			Ctx context.Context
			In  report.CreateReportInput
		}
		DeleteReport []struct {
			Ctx context.Context
			In  report.DeleteReportInput
		}
	}
	lockCreateReport sync.RWMutex
	lockDeleteReport sync.RWMutex
}

func (mock *reportServiceMock) CreateReport(ctx context.Context, in report.CreateReportInput) (*report.CreateResult, error) {
	if mock.CreateReportFunc == nil {
		panic("reportServiceMock.CreateReportFunc: method is nil but reportService.CreateReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  report.CreateReportInput
	}{Ctx: ctx, In: in}
	mock.lockCreateReport.Lock()
	mock.calls.CreateReport = append(mock.calls.CreateReport, callInfo)
	mock.lockCreateReport.Unlock()
	return mock.CreateReportFunc(ctx, in)
}

func (mock *reportServiceMock) CreateReportCalls() []struct {
	Ctx context.Context
	In  report.CreateReportInput
} {
	mock.lockCreateReport.RLock()
	calls := mock.calls.CreateReport
	mock.lockCreateReport.RUnlock()
	return calls
}

func (mock *reportServiceMock) DeleteReport(ctx context.Context, in report.DeleteReportInput) error {
	if mock.DeleteReportFunc == nil {
		panic("reportServiceMock.DeleteReportFunc: method is nil but reportService.DeleteReport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  report.DeleteReportInput
	}{Ctx: ctx, In: in}
	mock.lockDeleteReport.Lock()
	mock.calls.DeleteReport = append(mock.calls.DeleteReport, callInfo)
	mock.lockDeleteReport.Unlock()
	return mock.DeleteReportFunc(ctx, in)
}

func (mock *reportServiceMock) DeleteReportCalls() []struct {
	Ctx context.Context
	In  report.DeleteReportInput
} {
	mock.lockDeleteReport.RLock()
	calls := mock.calls.DeleteReport
	mock.lockDeleteReport.RUnlock()
	return calls
}
