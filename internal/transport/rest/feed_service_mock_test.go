package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/devtrack-inbox/internal/service/inbox"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ListFeedFunc func(ctx context.Context, input inbox.ListFeedInput) (*inbox.ListFeedResult, error)

	calls struct {
		ListFeed []struct {
			Ctx   context.Context
			Input inbox.ListFeedInput
		}
	}
	lockListFeed sync.RWMutex
}

func (mock *feedServiceMock) ListFeed(ctx context.Context, input inbox.ListFeedInput) (*inbox.ListFeedResult, error) {
	if mock.ListFeedFunc == nil {
		panic("feedServiceMock.ListFeedFunc: method is nil but feedService.ListFeed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inbox.ListFeedInput
	}{Ctx: ctx, Input: input}
	mock.lockListFeed.Lock()
	mock.calls.ListFeed = append(mock.calls.ListFeed, callInfo)
	mock.lockListFeed.Unlock()
	return mock.ListFeedFunc(ctx, input)
}

func (mock *feedServiceMock) ListFeedCalls() []struct {
	Ctx   context.Context
	Input inbox.ListFeedInput
} {
	mock.lockListFeed.RLock()
	calls := mock.calls.ListFeed
	mock.lockListFeed.RUnlock()
	return calls
}
