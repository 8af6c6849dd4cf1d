package report

import (
	"context"
	"sync"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/domain"
)

var _ extractor = &extractorMock{}

type extractorMock struct {
	ExtractFunc func(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error)

	calls struct {
		Extract []struct {
			Ctx          context.Context
			Text         string
			ImageRef     *string
			LocationText string
		}
	}
	lockExtract sync.RWMutex
}

func (mock *extractorMock) Extract(ctx context.Context, text string, imageRef *string, locationText string) (domain.Features, error) {
	if mock.ExtractFunc == nil {
		panic("extractorMock.ExtractFunc: method is nil but extractor.Extract was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Text         string
		ImageRef     *string
		LocationText string
	}{Ctx: ctx, Text: text, ImageRef: imageRef, LocationText: locationText}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(ctx, text, imageRef, locationText)
}

func (mock *extractorMock) ExtractCalls() []struct {
	Ctx          context.Context
	Text         string
	ImageRef     *string
	LocationText string
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}
