package deck

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
	maxFaceLen        = 10000
	maxLinkLen        = 2048
	maxImportCards    = 5000
)

// CreateDeckInput holds parameters for creating a deck.
type CreateDeckInput struct {
	Name        string
	Description string
}

// Validate validates the create deck input.
func (i CreateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDeckInput holds parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID      uuid.UUID
	Name        string
	Description string
}

// Validate validates the update deck input.
func (i UpdateDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCardInput holds parameters for creating a card.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  string
	Back   string
	Link   *string
}

// Validate validates the create card input.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	errs = append(errs, validateFaces(i.Front, i.Back, i.Link)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds parameters for updating a card.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  string
	Back   string
	Link   *string
}

// Validate validates the update card input.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	errs = append(errs, validateFaces(i.Front, i.Back, i.Link)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFaces(front, back string, link *string) []domain.FieldError {
	var errs []domain.FieldError

	if front == "" {
		errs = append(errs, domain.FieldError{Field: "front", Message: "required"})
	} else if len(front) > maxFaceLen {
		errs = append(errs, domain.FieldError{Field: "front", Message: "too long"})
	}
	if back == "" {
		errs = append(errs, domain.FieldError{Field: "back", Message: "required"})
	} else if len(back) > maxFaceLen {
		errs = append(errs, domain.FieldError{Field: "back", Message: "too long"})
	}
	if link != nil && len(*link) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "link", Message: "too long"})
	}
	return errs
}

// ImportDeckInput holds a full deck document for import.
type ImportDeckInput struct {
	Name        string
	Description string
	Cards       []ImportCardInput
}

// ImportCardInput is one card inside an import document.
type ImportCardInput struct {
	Front string
	Back  string
	Link  *string
}

// Validate validates the import document, reporting card errors by position.
func (i ImportDeckInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.Cards) > maxImportCards {
		errs = append(errs, domain.FieldError{Field: "cards", Message: "too many cards"})
	}
	for idx, c := range i.Cards {
		for _, fe := range validateFaces(c.Front, c.Back, c.Link) {
			fe.Field = fmt.Sprintf("cards[%d].%s", idx, fe.Field)
			errs = append(errs, fe)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
