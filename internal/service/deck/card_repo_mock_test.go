package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Card) error
	CreateBatchFunc func(ctx context.Context, cards []domain.Card) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeckFunc  func(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, front, back string, link *string) (*domain.Card, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Card *domain.Card
		}
		CreateBatch []struct {
			Cards []domain.Card
		}
		GetByID []struct {
			ID uuid.UUID
		}
		ListByDeck []struct {
			DeckID uuid.UUID
		}
		Update []struct {
			ID    uuid.UUID
			Front string
			Back  string
			Link  *string
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockCreateBatch sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByDeck  sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *cardRepoMock) Create(ctx context.Context, c *domain.Card) error {
	if mock.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	callInfo := struct{ Card *domain.Card }{Card: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *cardRepoMock) CreateCalls() []struct {
	Card *domain.Card
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *cardRepoMock) CreateBatch(ctx context.Context, cards []domain.Card) error {
	if mock.CreateBatchFunc == nil {
		panic("cardRepoMock.CreateBatchFunc: method is nil but cardRepo.CreateBatch was just called")
	}
	callInfo := struct{ Cards []domain.Card }{Cards: cards}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, cards)
}

func (mock *cardRepoMock) CreateBatchCalls() []struct {
	Cards []domain.Card
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *cardRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *cardRepoMock) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	if mock.ListByDeckFunc == nil {
		panic("cardRepoMock.ListByDeckFunc: method is nil but cardRepo.ListByDeck was just called")
	}
	callInfo := struct{ DeckID uuid.UUID }{DeckID: deckID}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, deckID)
}

func (mock *cardRepoMock) ListByDeckCalls() []struct {
	DeckID uuid.UUID
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *cardRepoMock) Update(ctx context.Context, id uuid.UUID, front, back string, link *string) (*domain.Card, error) {
	if mock.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Front string
		Back  string
		Link  *string
	}{ID: id, Front: front, Back: back, Link: link}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, front, back, link)
}

func (mock *cardRepoMock) UpdateCalls() []struct {
	ID    uuid.UUID
	Front string
	Back  string
	Link  *string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *cardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *cardRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
