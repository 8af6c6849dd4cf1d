package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/matching"
)

var _ matchService = &matchServiceMock{}

type matchServiceMock struct {
	ListMyMatchesFunc     func(ctx context.Context, f domain.MatchListFilter) ([]domain.Match, error)
	GetMatchFunc          func(ctx context.Context, matchID uuid.UUID) (*domain.Match, error)
	UpdateMatchStatusFunc func(ctx context.Context, in matching.UpdateStatusInput) (*domain.Match, error)

	calls struct {
		ListMyMatches []struct {
			Ctx context.Context
			F   domain.MatchListFilter
		}
		GetMatch []struct {
			Ctx     context.Context
			MatchID uuid.UUID
		}
		UpdateMatchStatus []struct {
			Ctx context.Context
			In  matching.UpdateStatusInput
		}
	}
	lockListMyMatches     sync.RWMutex
	lockGetMatch          sync.RWMutex
	lockUpdateMatchStatus sync.RWMutex
}

func (mock *matchServiceMock) ListMyMatches(ctx context.Context, f domain.MatchListFilter) ([]domain.Match, error) {
	if mock.ListMyMatchesFunc == nil {
		panic("matchServiceMock.ListMyMatchesFunc: method is nil but matchService.ListMyMatches was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.MatchListFilter
	}{Ctx: ctx, F: f}
	mock.lockListMyMatches.Lock()
	mock.calls.ListMyMatches = append(mock.calls.ListMyMatches, callInfo)
	mock.lockListMyMatches.Unlock()
	return mock.ListMyMatchesFunc(ctx, f)
}

func (mock *matchServiceMock) ListMyMatchesCalls() []struct {
	Ctx context.Context
	F   domain.MatchListFilter
} {
	mock.lockListMyMatches.RLock()
	calls := mock.calls.ListMyMatches
	mock.lockListMyMatches.RUnlock()
	return calls
}

func (mock *matchServiceMock) GetMatch(ctx context.Context, matchID uuid.UUID) (*domain.Match, error) {
	if mock.GetMatchFunc == nil {
		panic("matchServiceMock.GetMatchFunc: method is nil but matchService.GetMatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		MatchID uuid.UUID
	}{Ctx: ctx, MatchID: matchID}
	mock.lockGetMatch.Lock()
	mock.calls.GetMatch = append(mock.calls.GetMatch, callInfo)
	mock.lockGetMatch.Unlock()
	return mock.GetMatchFunc(ctx, matchID)
}

func (mock *matchServiceMock) GetMatchCalls() []struct {
	Ctx     context.Context
	MatchID uuid.UUID
} {
	mock.lockGetMatch.RLock()
	calls := mock.calls.GetMatch
	mock.lockGetMatch.RUnlock()
	return calls
}

func (mock *matchServiceMock) UpdateMatchStatus(ctx context.Context, in matching.UpdateStatusInput) (*domain.Match, error) {
	if mock.UpdateMatchStatusFunc == nil {
		panic("matchServiceMock.UpdateMatchStatusFunc: method is nil but matchService.UpdateMatchStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  matching.UpdateStatusInput
	}{Ctx: ctx, In: in}
	mock.lockUpdateMatchStatus.Lock()
	mock.calls.UpdateMatchStatus = append(mock.calls.UpdateMatchStatus, callInfo)
	mock.lockUpdateMatchStatus.Unlock()
	return mock.UpdateMatchStatusFunc(ctx, in)
}

func (mock *matchServiceMock) UpdateMatchStatusCalls() []struct {
	Ctx context.Context
	In  matching.UpdateStatusInput
} {
	mock.lockUpdateMatchStatus.RLock()
	calls := mock.calls.UpdateMatchStatus
	mock.lockUpdateMatchStatus.RUnlock()
	return calls
}
