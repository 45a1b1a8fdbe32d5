package deck

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// DeckExport is a portable deck document. Review counters and star ratings
// stay behind: an exported deck imports fresh.
type DeckExport struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	ExportedAt  time.Time    `json:"exported_at"`
	Cards       []CardExport `json:"cards"`
}

// CardExport is one card inside an export document.
type CardExport struct {
	Front string  `json:"front"`
	Back  string  `json:"back"`
	Link  *string `json:"link,omitempty"`
}

// ExportDeck builds a portable document from one of the user's decks.
func (s *Service) ExportDeck(ctx context.Context, userID, deckID uuid.UUID) (*DeckExport, error) {
	d, cards, err := s.GetDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("deck.ExportDeck: %w", err)
	}

	out := &DeckExport{
		Name:        d.Name,
		Description: d.Description,
		ExportedAt:  time.Now().UTC(),
		Cards:       make([]CardExport, 0, len(cards)),
	}
	for _, c := range cards {
		out.Cards = append(out.Cards, CardExport{Front: c.Front, Back: c.Back, Link: c.Link})
	}
	return out, nil
}

// ImportDeck creates a new deck with all of the document's cards in a single
// transaction. A failed card insert rolls back the whole import.
func (s *Service) ImportDeck(ctx context.Context, userID uuid.UUID, input ImportDeckInput) (*domain.Deck, error) {
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

	cards := make([]domain.Card, 0, len(input.Cards))
	for _, c := range input.Cards {
		cards = append(cards, domain.Card{
			ID:        uuid.New(),
			DeckID:    d.ID,
			Front:     c.Front,
			Back:      c.Back,
			Link:      c.Link,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.decks.Create(txCtx, d); err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
		if err := s.cards.CreateBatch(txCtx, cards); err != nil {
			return fmt.Errorf("create cards: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deck.ImportDeck: %w", err)
	}

	s.log.InfoContext(ctx, "deck imported",
		slog.String("deck_id", d.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("cards", len(cards)))
	return d, nil
}
