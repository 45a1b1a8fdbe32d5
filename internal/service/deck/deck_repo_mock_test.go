package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ deckRepo = &deckRepoMock{}

type deckRepoMock struct {
	CreateFunc     func(ctx context.Context, d *domain.Deck) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, name, description string) (*domain.Deck, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Deck *domain.Deck
		}
		GetByID []struct {
			ID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
		}
		Update []struct {
			ID          uuid.UUID
			Name        string
			Description string
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *deckRepoMock) Create(ctx context.Context, d *domain.Deck) error {
	if mock.CreateFunc == nil {
		panic("deckRepoMock.CreateFunc: method is nil but deckRepo.Create was just called")
	}
	callInfo := struct{ Deck *domain.Deck }{Deck: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *deckRepoMock) CreateCalls() []struct {
	Deck *domain.Deck
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *deckRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	if mock.ListByUserFunc == nil {
		panic("deckRepoMock.ListByUserFunc: method is nil but deckRepo.ListByUser was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *deckRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *deckRepoMock) Update(ctx context.Context, id uuid.UUID, name, description string) (*domain.Deck, error) {
	if mock.UpdateFunc == nil {
		panic("deckRepoMock.UpdateFunc: method is nil but deckRepo.Update was just called")
	}
	callInfo := struct {
		ID          uuid.UUID
		Name        string
		Description string
	}{ID: id, Name: name, Description: description}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, name, description)
}

func (mock *deckRepoMock) UpdateCalls() []struct {
	ID          uuid.UUID
	Name        string
	Description string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *deckRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckRepoMock.DeleteFunc: method is nil but deckRepo.Delete was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *deckRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
