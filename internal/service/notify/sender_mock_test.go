package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ sender = &senderMock{}

type senderMock struct {
	NotifyFunc func(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error

	calls struct {
		Notify []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Summary domain.MatchSummary
		}
	}
	lockNotify sync.RWMutex
}

func (mock *senderMock) Notify(ctx context.Context, userID uuid.UUID, summary domain.MatchSummary) error {
	if mock.NotifyFunc == nil {
		panic("senderMock.NotifyFunc: method is nil but sender.Notify was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Summary domain.MatchSummary
	}{Ctx: ctx, UserID: userID, Summary: summary}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, userID, summary)
}

func (mock *senderMock) NotifyCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	Summary domain.MatchSummary
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
