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

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	CreateDeck(ctx context.Context, userID uuid.UUID, input deck.CreateDeckInput) (*domain.Deck, error)
	ListDecks(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error)
	GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, []domain.Card, error)
	UpdateDeck(ctx context.Context, userID uuid.UUID, input deck.UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error
	ExportDeck(ctx context.Context, userID, deckID uuid.UUID) (*deck.DeckExport, error)
	ImportDeck(ctx context.Context, userID uuid.UUID, input deck.ImportDeckInput) (*domain.Deck, error)
}

// DeckHandler serves deck REST endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type deckResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type deckDetailResponse struct {
	deckResponse
	Cards []cardResponse `json:"cards"`
}

type importRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cards       []struct {
		Front string  `json:"front"`
		Back  string  `json:"back"`
		Link  *string `json:"link"`
	} `json:"cards"`
}

// Create handles POST /api/decks.
func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.CreateDeck(r.Context(), userID, deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(d))
}

// List handles GET /api/decks.
func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	decks, err := h.svc.ListDecks(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]deckResponse, 0, len(decks))
	for i := range decks {
		out = append(out, toDeckResponse(&decks[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"decks": out})
}

// Get handles GET /api/decks/{id}.
func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	deckID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	d, cards, err := h.svc.GetDeck(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := deckDetailResponse{
		deckResponse: toDeckResponse(d),
		Cards:        make([]cardResponse, 0, len(cards)),
	}
	for i := range cards {
		resp.Cards = append(resp.Cards, toCardResponse(&cards[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/decks/{id}.
func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	deckID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.UpdateDeck(r.Context(), userID, deck.UpdateDeckInput{
		DeckID:      deckID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d))
}

// Delete handles DELETE /api/decks/{id}.
func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	deckID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), userID, deckID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/decks/{id}/export.
func (h *DeckHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	deckID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	doc, err := h.svc.ExportDeck(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Import handles POST /api/decks/import.
func (h *DeckHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := deck.ImportDeckInput{
		Name:        req.Name,
		Description: req.Description,
		Cards:       make([]deck.ImportCardInput, 0, len(req.Cards)),
	}
	for _, c := range req.Cards {
		input.Cards = append(input.Cards, deck.ImportCardInput{
			Front: c.Front,
			Back:  c.Back,
			Link:  c.Link,
		})
	}

	d, err := h.svc.ImportDeck(r.Context(), userID, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(d))
}

func (h *DeckHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
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

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:           d.ID.String(),
		Name:         d.Name,
		Description:  d.Description,
		LastAccessed: d.LastAccessed,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
