package matching

import (
	"context"
	"sync"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	EnqueueFunc func(t domain.NotificationTarget) bool
	DeliverFunc func(ctx context.Context, t domain.NotificationTarget) error

	calls struct {
		Enqueue []struct {
			T domain.NotificationTarget
		}
		Deliver []struct {
			Ctx context.Context
			T   domain.NotificationTarget
		}
	}
	lockEnqueue sync.RWMutex
	lockDeliver sync.RWMutex
}

func (mock *dispatcherMock) Enqueue(t domain.NotificationTarget) bool {
	if mock.EnqueueFunc == nil {
		panic("dispatcherMock.EnqueueFunc: method is nil but dispatcher.Enqueue was just called")
	}
	callInfo := struct {
		T domain.NotificationTarget
	}{T: t}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(t)
}

func (mock *dispatcherMock) EnqueueCalls() []struct {
	T domain.NotificationTarget
} {
	mock.lockEnqueue.RLock()
	calls := mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}

func (mock *dispatcherMock) Deliver(ctx context.Context, t domain.NotificationTarget) error {
	if mock.DeliverFunc == nil {
		panic("dispatcherMock.DeliverFunc: method is nil but dispatcher.Deliver was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.NotificationTarget
	}{Ctx: ctx, T: t}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, t)
}

func (mock *dispatcherMock) DeliverCalls() []struct {
	Ctx context.Context
	T   domain.NotificationTarget
} {
	mock.lockDeliver.RLock()
	calls := mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}
