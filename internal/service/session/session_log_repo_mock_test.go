package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ sessionLogRepo = &sessionLogRepoMock{}

type sessionLogRepoMock struct {
	CreateFunc           func(ctx context.Context, log *domain.SessionLog) error
	ListRecentByDeckFunc func(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]domain.SessionLog, error)

	calls struct {
		Create []struct {
			Log *domain.SessionLog
		}
		ListRecentByDeck []struct {
			UserID uuid.UUID
			DeckID uuid.UUID
			Limit  int
		}
	}
	lockCreate           sync.RWMutex
	lockListRecentByDeck sync.RWMutex
}

func (mock *sessionLogRepoMock) Create(ctx context.Context, log *domain.SessionLog) error {
	if mock.CreateFunc == nil {
		panic("sessionLogRepoMock.CreateFunc: method is nil but sessionLogRepo.Create was just called")
	}
	callInfo := struct{ Log *domain.SessionLog }{Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *sessionLogRepoMock) CreateCalls() []struct {
	Log *domain.SessionLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionLogRepoMock) ListRecentByDeck(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]domain.SessionLog, error) {
	if mock.ListRecentByDeckFunc == nil {
		panic("sessionLogRepoMock.ListRecentByDeckFunc: method is nil but sessionLogRepo.ListRecentByDeck was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		DeckID uuid.UUID
		Limit  int
	}{UserID: userID, DeckID: deckID, Limit: limit}
	mock.lockListRecentByDeck.Lock()
	mock.calls.ListRecentByDeck = append(mock.calls.ListRecentByDeck, callInfo)
	mock.lockListRecentByDeck.Unlock()
	return mock.ListRecentByDeckFunc(ctx, userID, deckID, limit)
}

func (mock *sessionLogRepoMock) ListRecentByDeckCalls() []struct {
	UserID uuid.UUID
	DeckID uuid.UUID
	Limit  int
} {
	mock.lockListRecentByDeck.RLock()
	calls := mock.calls.ListRecentByDeck
	mock.lockListRecentByDeck.RUnlock()
	return calls
}
