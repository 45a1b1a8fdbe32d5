package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxStarRating is the upper bound of the 0..5 star scale.
const MaxStarRating = 5

// Card is a front/back flashcard owned by exactly one deck.
// The lifetime counters and the star rating are mutable only through
// CardAction updates applied by the card repository; no other write
// path touches them.
type Card struct {
	ID         uuid.UUID
	DeckID     uuid.UUID
	Front      string
	Back       string
	Link       *string
	PassCount  int
	SkipCount  int
	FailCount  int
	StarRating int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorstScore ranks a card by past performance: higher means the card
// needs more review. Fails weigh double because a fail is a stronger
// signal than a skip, and passes subtract.
func (c *Card) WorstScore() int {
	return c.FailCount*2 + c.SkipCount - c.PassCount
}

// SelectionWeight is the card's weight for adjusted-random sampling.
// Never below 1 so every card stays reachable.
func (c *Card) SelectionWeight() int {
	return 1 + c.FailCount + c.SkipCount
}

// CardAction is a counter mutation applied when an outcome is recorded.
type CardAction string

const (
	ActionIncrementPass CardAction = "INCREMENT_PASS"
	ActionIncrementSkip CardAction = "INCREMENT_SKIP"
	ActionIncrementFail CardAction = "INCREMENT_FAIL"
)

// IsValid reports whether the action is a known counter increment.
func (a CardAction) IsValid() bool {
	switch a {
	case ActionIncrementPass, ActionIncrementSkip, ActionIncrementFail:
		return true
	}
	return false
}
