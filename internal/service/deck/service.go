// Package deck implements deck and card management: CRUD, ownership checks,
// and JSON import/export.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

type deckRepo interface {
	Create(ctx context.Context, d *domain.Deck) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*domain.Deck, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepo interface {
	Create(ctx context.Context, c *domain.Card) error
	CreateBatch(ctx context.Context, cards []domain.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	Update(ctx context.Context, id uuid.UUID, front, back string, link *string) (*domain.Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements deck and card operations.
type Service struct {
	log   *slog.Logger
	decks deckRepo
	cards cardRepo
	tx    txManager
}

// NewService creates a new deck service instance.
func NewService(logger *slog.Logger, decks deckRepo, cards cardRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "deck"),
		decks: decks,
		cards: cards,
		tx:    tx,
	}
}

// ownedDeck loads a deck and verifies it belongs to userID.
// Returns ErrForbidden when the deck belongs to someone else.
func (s *Service) ownedDeck(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	d, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	if d.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return d, nil
}

// ownedCard loads a card and verifies its deck belongs to userID.
func (s *Service) ownedCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	c, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	if _, err := s.ownedDeck(ctx, userID, c.DeckID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	return c, nil
}

// CreateDeck creates an empty deck for the user.
func (s *Service) CreateDeck(ctx context.Context, userID uuid.UUID, input CreateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.decks.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("deck.CreateDeck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("deck_id", d.ID.String()),
		slog.String("user_id", userID.String()))
	return d, nil
}

// ListDecks returns all decks owned by the user, most recently studied first.
func (s *Service) ListDecks(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	decks, err := s.decks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("deck.ListDecks: %w", err)
	}
	return decks, nil
}

// GetDeck returns a single deck with its cards.
func (s *Service) GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, []domain.Card, error) {
	d, err := s.ownedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("deck.GetDeck: %w", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("deck.GetDeck list cards: %w", err)
	}
	return d, cards, nil
}

// UpdateDeck renames a deck or changes its description.
func (s *Service) UpdateDeck(ctx context.Context, userID uuid.UUID, input UpdateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedDeck(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("deck.UpdateDeck: %w", err)
	}

	d, err := s.decks.Update(ctx, input.DeckID, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("deck.UpdateDeck: %w", err)
	}
	return d, nil
}

// DeleteDeck removes a deck and all of its cards.
func (s *Service) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return fmt.Errorf("deck.DeleteDeck: %w", err)
	}
	if err := s.decks.Delete(ctx, deckID); err != nil {
		return fmt.Errorf("deck.DeleteDeck: %w", err)
	}

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("deck_id", deckID.String()),
		slog.String("user_id", userID.String()))
	return nil
}

// CreateCard adds a card to one of the user's decks.
func (s *Service) CreateCard(ctx context.Context, userID uuid.UUID, input CreateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedDeck(ctx, userID, input.DeckID); err != nil {
		return nil, fmt.Errorf("deck.CreateCard: %w", err)
	}

	now := time.Now().UTC()
	c := &domain.Card{
		ID:        uuid.New(),
		DeckID:    input.DeckID,
		Front:     input.Front,
		Back:      input.Back,
		Link:      input.Link,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cards.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("deck.CreateCard: %w", err)
	}
	return c, nil
}

// GetCard returns a single card owned by the user.
func (s *Service) GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	c, err := s.ownedCard(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("deck.GetCard: %w", err)
	}
	return c, nil
}

// UpdateCard changes a card's faces or link. Review counters are untouched.
func (s *Service) UpdateCard(ctx context.Context, userID uuid.UUID, input UpdateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedCard(ctx, userID, input.CardID); err != nil {
		return nil, fmt.Errorf("deck.UpdateCard: %w", err)
	}

	c, err := s.cards.Update(ctx, input.CardID, input.Front, input.Back, input.Link)
	if err != nil {
		return nil, fmt.Errorf("deck.UpdateCard: %w", err)
	}
	return c, nil
}

// DeleteCard removes a card from the user's deck. A session currently holding
// the card drops it from its queue on the next serve.
func (s *Service) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := s.ownedCard(ctx, userID, cardID); err != nil {
		return fmt.Errorf("deck.DeleteCard: %w", err)
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("deck.DeleteCard: %w", err)
	}
	return nil
}
