package session

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// CountAll is the sentinel for "study every card in the deck".
const CountAll = 0

// StartSessionInput holds the parameters for starting a session.
// Count is either CountAll or a positive card count; the upper bound
// (deck size) is checked against the deck at start time.
type StartSessionInput struct {
	DeckID uuid.UUID
	Count  int
	Method domain.SessionMethod
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be \"all\" or a positive integer"})
	}
	if !i.Method.IsValid() {
		errs = append(errs, domain.FieldError{Field: "method", Message: "unknown selection method"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordOutcomeInput holds the parameters for recording an outcome against
// the current session card.
type RecordOutcomeInput struct {
	DeckID uuid.UUID
	CardID uuid.UUID
	Action domain.CardAction
}

// Validate checks all fields and collects all errors.
func (i *RecordOutcomeInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be INCREMENT_PASS, INCREMENT_SKIP, or INCREMENT_FAIL"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetStarRatingInput holds the parameters for rating a card. Independent of
// session sequence.
type SetStarRatingInput struct {
	DeckID uuid.UUID
	CardID uuid.UUID
	Stars  int
}

// Validate checks all fields and collects all errors.
func (i *SetStarRatingInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Stars < 0 || i.Stars > domain.MaxStarRating {
		errs = append(errs, domain.FieldError{Field: "stars", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
