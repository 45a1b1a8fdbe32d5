package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeckFunc    func(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	ApplyActionFunc   func(ctx context.Context, id uuid.UUID, action domain.CardAction) (*domain.Card, error)
	SetStarRatingFunc func(ctx context.Context, id uuid.UUID, stars int) (*domain.Card, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		ListByDeck []struct {
			DeckID uuid.UUID
		}
		ApplyAction []struct {
			ID     uuid.UUID
			Action domain.CardAction
		}
		SetStarRating []struct {
			ID    uuid.UUID
			Stars int
		}
	}
	lockGetByID       sync.RWMutex
	lockListByDeck    sync.RWMutex
	lockApplyAction   sync.RWMutex
	lockSetStarRating sync.RWMutex
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

func (mock *cardRepoMock) ApplyAction(ctx context.Context, id uuid.UUID, action domain.CardAction) (*domain.Card, error) {
	if mock.ApplyActionFunc == nil {
		panic("cardRepoMock.ApplyActionFunc: method is nil but cardRepo.ApplyAction was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Action domain.CardAction
	}{ID: id, Action: action}
	mock.lockApplyAction.Lock()
	mock.calls.ApplyAction = append(mock.calls.ApplyAction, callInfo)
	mock.lockApplyAction.Unlock()
	return mock.ApplyActionFunc(ctx, id, action)
}

func (mock *cardRepoMock) ApplyActionCalls() []struct {
	ID     uuid.UUID
	Action domain.CardAction
} {
	mock.lockApplyAction.RLock()
	calls := mock.calls.ApplyAction
	mock.lockApplyAction.RUnlock()
	return calls
}

func (mock *cardRepoMock) SetStarRating(ctx context.Context, id uuid.UUID, stars int) (*domain.Card, error) {
	if mock.SetStarRatingFunc == nil {
		panic("cardRepoMock.SetStarRatingFunc: method is nil but cardRepo.SetStarRating was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Stars int
	}{ID: id, Stars: stars}
	mock.lockSetStarRating.Lock()
	mock.calls.SetStarRating = append(mock.calls.SetStarRating, callInfo)
	mock.lockSetStarRating.Unlock()
	return mock.SetStarRatingFunc(ctx, id, stars)
}

func (mock *cardRepoMock) SetStarRatingCalls() []struct {
	ID    uuid.UUID
	Stars int
} {
	mock.lockSetStarRating.RLock()
	calls := mock.calls.SetStarRating
	mock.lockSetStarRating.RUnlock()
	return calls
}
