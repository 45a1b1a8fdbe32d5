package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	TouchLastAccessedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		TouchLastAccessed []struct {
			ID uuid.UUID
			At time.Time
		}
	}
	lockGetByID           sync.RWMutex
	lockTouchLastAccessed sync.RWMutex
}

func (mock *deckRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDFunc == nil {
		panic("deckRepoMock.GetByIDFunc: method is nil but deckRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *deckRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *deckRepoMock) TouchLastAccessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastAccessedFunc == nil {
		panic("deckRepoMock.TouchLastAccessedFunc: method is nil but deckRepo.TouchLastAccessed was just called")
	}
	callInfo := struct {
		ID uuid.UUID
		At time.Time
	}{ID: id, At: at}
	mock.lockTouchLastAccessed.Lock()
	mock.calls.TouchLastAccessed = append(mock.calls.TouchLastAccessed, callInfo)
	mock.lockTouchLastAccessed.Unlock()
	return mock.TouchLastAccessedFunc(ctx, id, at)
}

func (mock *deckRepoMock) TouchLastAccessedCalls() []struct {
	ID uuid.UUID
	At time.Time
} {
	mock.lockTouchLastAccessed.RLock()
	calls := mock.calls.TouchLastAccessed
	mock.lockTouchLastAccessed.RUnlock()
	return calls
}
