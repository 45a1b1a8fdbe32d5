package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionMethod selects the algorithm that orders cards into a session's
// working queue.
type SessionMethod string

const (
	MethodRandom         SessionMethod = "RANDOM"
	MethodFails          SessionMethod = "FAILS"
	MethodSkips          SessionMethod = "SKIPS"
	MethodWorst          SessionMethod = "WORST"
	MethodStars          SessionMethod = "STARS"
	MethodUnrated        SessionMethod = "UNRATED"
	MethodAdjustedRandom SessionMethod = "ADJUSTED_RANDOM"
)

// IsValid reports whether the method is a known selection method.
func (m SessionMethod) IsValid() bool {
	switch m {
	case MethodRandom, MethodFails, MethodSkips, MethodWorst,
		MethodStars, MethodUnrated, MethodAdjustedRandom:
		return true
	}
	return false
}

// Outcome is the recorded result for a card within a session.
type Outcome string

const (
	OutcomeUnset Outcome = ""
	OutcomePass  Outcome = "PASS"
	OutcomeSkip  Outcome = "SKIP"
	OutcomeFail  Outcome = "FAIL"
)

// CardStat is one slot of the session progress strip, in working-queue
// order. Flags derive from the session's outcome map; StarRating reflects
// any rating change applied during the session.
type CardStat struct {
	CardID     uuid.UUID
	Viewed     bool
	Passed     bool
	Failed     bool
	Skipped    bool
	StarRating int
}

// SessionStats is the live progress snapshot of a session.
type SessionStats struct {
	TotalCards   int
	ViewedCount  int
	Remaining    int
	CurrentIndex int
	Completed    bool
	CardStats    []CardStat
}

// SessionLog is the durable aggregate record of a completed session.
// Only aggregate numbers are persisted; the per-card outcome map dies
// with the in-memory session.
type SessionLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DeckID     uuid.UUID
	Method     SessionMethod
	TotalCards int
	Passed     int
	Failed     int
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
}
