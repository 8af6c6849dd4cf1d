package report

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
)

var _ matcher = &matcherMock{}

type matcherMock struct {
	ScoreAndPromoteFunc func(ctx context.Context, reportID uuid.UUID) (*matching.Result, error)

	calls struct {
		ScoreAndPromote []struct {
			Ctx      context.Context
			ReportID uuid.UUID
		}
	}
	lockScoreAndPromote sync.RWMutex
}

func (mock *matcherMock) ScoreAndPromote(ctx context.Context, reportID uuid.UUID) (*matching.Result, error) {
	if mock.ScoreAndPromoteFunc == nil {
		panic("matcherMock.ScoreAndPromoteFunc: method is nil but matcher.ScoreAndPromote was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ReportID uuid.UUID
	}{Ctx: ctx, ReportID: reportID}
	mock.lockScoreAndPromote.Lock()
	mock.calls.ScoreAndPromote = append(mock.calls.ScoreAndPromote, callInfo)
	mock.lockScoreAndPromote.Unlock()
	return mock.ScoreAndPromoteFunc(ctx, reportID)
}

func (mock *matcherMock) ScoreAndPromoteCalls() []struct {
	Ctx      context.Context
	ReportID uuid.UUID
} {
	mock.lockScoreAndPromote.RLock()
	calls := mock.calls.ScoreAndPromote
	mock.lockScoreAndPromote.RUnlock()
	return calls
}
