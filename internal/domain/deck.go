package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named collection of cards owned by a user.
// LastAccessed is bumped exactly when a session is started for the deck
// or a next-card is successfully served from it.
type Deck struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	LastAccessed *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
