package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
)

var _ reportMatcher = &reportMatcherMock{}

type reportMatcherMock struct {
	MatchReportFunc          func(ctx context.Context, reportID uuid.UUID) (*matching.Result, error)
	ListReportCandidatesFunc func(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error)
	ListReportMatchesFunc    func(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)

	calls struct {
		MatchReport []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
		ListReportCandidates []struct {
			Ctx      context.Context
			ReportID uuid.UUID
			Limit    int
		}
		ListReportMatches []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
	}
	lockMatchReport          sync.RWMutex
	lockListReportCandidates sync.RWMutex
	lockListReportMatches    sync.RWMutex
}

func (mock *reportMatcherMock) MatchReport(ctx context.Context, reportID uuid.UUID) (*matching.Result, error) {
	if mock.MatchReportFunc == nil {
		panic("reportMatcherMock.MatchReportFunc: method is nil but reportMatcher.MatchReport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockMatchReport.Lock()
	mock.calls.MatchReport = append(mock.calls.MatchReport, callInfo)
	mock.lockMatchReport.Unlock()
	return mock.MatchReportFunc(ctx, reportID)
}

func (mock *reportMatcherMock) MatchReportCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockMatchReport.RLock()
	calls := mock.calls.MatchReport
	mock.lockMatchReport.RUnlock()
	return calls
}

func (mock *reportMatcherMock) ListReportCandidates(ctx context.Context, reportID uuid.UUID, limit int) ([]domain.MatchCandidate, error) {
	if mock.ListReportCandidatesFunc == nil {
		panic("reportMatcherMock.ListReportCandidatesFunc: method is nil but reportMatcher.ListReportCandidates was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
		Limit    int
	}{Ctx: ctx, ReportID: reportID, Limit: limit}
	mock.lockListReportCandidates.Lock()
	mock.calls.ListReportCandidates = append(mock.calls.ListReportCandidates, callInfo)
	mock.lockListReportCandidates.Unlock()
	return mock.ListReportCandidatesFunc(ctx, reportID, limit)
}

func (mock *reportMatcherMock) ListReportCandidatesCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
	Limit    int
} {
	mock.lockListReportCandidates.RLock()
	calls := mock.calls.ListReportCandidates
	mock.lockListReportCandidates.RUnlock()
	return calls
}

func (mock *reportMatcherMock) ListReportMatches(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	if mock.ListReportMatchesFunc == nil {
		panic("reportMatcherMock.ListReportMatchesFunc: method is nil but reportMatcher.ListReportMatches was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockListReportMatches.Lock()
	mock.calls.ListReportMatches = append(mock.calls.ListReportMatches, callInfo)
	mock.lockListReportMatches.Unlock()
	return mock.ListReportMatchesFunc(ctx, reportID)
}

func (mock *reportMatcherMock) ListReportMatchesCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockListReportMatches.RLock()
	calls := mock.calls.ListReportMatches
	mock.lockListReportMatches.RUnlock()
	return calls
}
