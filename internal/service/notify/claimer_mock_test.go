package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ claimer = &claimerMock{}

type claimerMock struct {
	ClaimNotificationFunc func(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	calls struct {
		ClaimNotification []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockClaimNotification sync.RWMutex
}

func (mock *claimerMock) ClaimNotification(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if mock.ClaimNotificationFunc == nil {
		panic("claimerMock.ClaimNotificationFunc: method is nil but claimer.ClaimNotification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockClaimNotification.Lock()
	mock.calls.ClaimNotification = append(mock.calls.ClaimNotification, callInfo)
	mock.lockClaimNotification.Unlock()
	return mock.ClaimNotificationFunc(ctx, id, at)
}

func (mock *claimerMock) ClaimNotificationCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockClaimNotification.RLock()
	calls := mock.calls.ClaimNotification
	mock.lockClaimNotification.RUnlock()
	return calls
}
