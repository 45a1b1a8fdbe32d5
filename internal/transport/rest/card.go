package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/deck"
)

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	CreateCard(ctx context.Context, userID uuid.UUID, input deck.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
	UpdateCard(ctx context.Context, userID uuid.UUID, input deck.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

// CardHandler serves card REST endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type createCardRequest struct {
	DeckID string  `json:"deck_id"`
	Front  string  `json:"front"`
	Back   string  `json:"back"`
	Link   *string `json:"link"`
}

type updateCardRequest struct {
	Front string  `json:"front"`
	Back  string  `json:"back"`
	Link  *string `json:"link"`
}

type cardResponse struct {
	ID         string    `json:"id"`
	DeckID     string    `json:"deck_id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Link       *string   `json:"link,omitempty"`
	PassCount  int       `json:"pass_count"`
	SkipCount  int       `json:"skip_count"`
	FailCount  int       `json:"fail_count"`
	StarRating int       `json:"star_rating"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Create handles POST /api/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	c, err := h.svc.CreateCard(r.Context(), userID, deck.CreateCardInput{
		DeckID: deckID,
		Front:  req.Front,
		Back:   req.Back,
		Link:   req.Link,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(c))
}

// Get handles GET /api/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	c, err := h.svc.GetCard(r.Context(), userID, cardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// Update handles PUT /api/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.UpdateCard(r.Context(), userID, deck.UpdateCardInput{
		CardID: cardID,
		Front:  req.Front,
		Back:   req.Back,
		Link:   req.Link,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(c))
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	if err := h.svc.DeleteCard(r.Context(), userID, cardID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CardHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:         c.ID.String(),
		DeckID:     c.DeckID.String(),
		Front:      c.Front,
		Back:       c.Back,
		Link:       c.Link,
		PassCount:  c.PassCount,
		SkipCount:  c.SkipCount,
		FailCount:  c.FailCount,
		StarRating: c.StarRating,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
