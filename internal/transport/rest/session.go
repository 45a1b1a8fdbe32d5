package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
	"github.com/heartmarshall/flashdeck-backend/internal/service/session"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	StartSession(ctx context.Context, userID uuid.UUID, input session.StartSessionInput) error
	GetNextCard(ctx context.Context, userID, deckID uuid.UUID) (*domain.Card, error)
	RandomJump(ctx context.Context, userID, deckID uuid.UUID) (*domain.Card, error)
	RecordOutcome(ctx context.Context, userID uuid.UUID, input session.RecordOutcomeInput) error
	SetStarRating(ctx context.Context, userID uuid.UUID, input session.SetStarRatingInput) (*domain.Card, error)
	GetSessionStats(ctx context.Context, userID, deckID uuid.UUID) (*domain.SessionStats, error)
	ClearSession(ctx context.Context, userID, deckID uuid.UUID) error
	RecentSessions(ctx context.Context, userID, deckID uuid.UUID) ([]domain.SessionLog, error)
}

// cardFinder resolves a card to its deck for the deckless /cards/{id}/stars route.
type cardFinder interface {
	GetCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error)
}

// SessionHandler serves study session REST endpoints.
type SessionHandler struct {
	svc   sessionService
	cards cardFinder
	log   *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, cards cardFinder, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, cards: cards, log: logger.With("handler", "session")}
}

// countValue decodes the requested session size: either the string "all"
// or a positive integer. The zero value means "all".
type countValue int

func (c *countValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "all" {
			return fmt.Errorf("count: unknown value %q", s)
		}
		*c = session.CountAll
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("count: expected %q or an integer", "all")
	}
	if n <= 0 {
		return fmt.Errorf("count: must be positive")
	}
	*c = countValue(n)
	return nil
}

type startSessionRequest struct {
	Count  countValue `json:"count"`
	Method string     `json:"method"`
}

type outcomeRequest struct {
	CardID string `json:"card_id"`
	Action string `json:"action"`
}

type starsRequest struct {
	Stars int `json:"stars"`
}

type cardStatResponse struct {
	CardID     string `json:"card_id"`
	Viewed     bool   `json:"viewed"`
	Passed     bool   `json:"passed"`
	Failed     bool   `json:"failed"`
	Skipped    bool   `json:"skipped"`
	StarRating int    `json:"star_rating"`
}

type statsResponse struct {
	TotalCards   int                `json:"total_cards"`
	ViewedCount  int                `json:"viewed_count"`
	Remaining    int                `json:"remaining"`
	CurrentIndex int                `json:"current_index"`
	Completed    bool               `json:"completed"`
	CardStats    []cardStatResponse `json:"card_stats"`
}

type sessionLogResponse struct {
	ID         string    `json:"id"`
	Method     string    `json:"method"`
	TotalCards int       `json:"total_cards"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	Skipped    int       `json:"skipped"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Start handles POST /api/decks/{id}/session.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
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

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.svc.StartSession(r.Context(), userID, session.StartSessionInput{
		DeckID: deckID,
		Count:  int(req.Count),
		Method: domain.SessionMethod(req.Method),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Next handles GET /api/decks/{id}/session/next. Responds 204 with no body
// once the session has served every card.
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
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

	card, err := h.svc.GetNextCard(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if card == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Jump handles GET /api/decks/{id}/session/jump.
func (h *SessionHandler) Jump(w http.ResponseWriter, r *http.Request) {
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

	card, err := h.svc.RandomJump(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if card == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Outcome handles POST /api/decks/{id}/session/outcome.
func (h *SessionHandler) Outcome(w http.ResponseWriter, r *http.Request) {
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

	var req outcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	err = h.svc.RecordOutcome(r.Context(), userID, session.RecordOutcomeInput{
		DeckID: deckID,
		CardID: cardID,
		Action: domain.CardAction(req.Action),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetStars handles PUT /api/cards/{id}/stars. The card's deck is resolved
// first so an active session on that deck sees the new rating.
func (h *SessionHandler) SetStars(w http.ResponseWriter, r *http.Request) {
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

	var req starsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.cards.GetCard(r.Context(), userID, cardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	updated, err := h.svc.SetStarRating(r.Context(), userID, session.SetStarRatingInput{
		DeckID: card.DeckID,
		CardID: cardID,
		Stars:  req.Stars,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(updated))
}

// Stats handles GET /api/decks/{id}/session/stats.
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.svc.GetSessionStats(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := statsResponse{
		TotalCards:   stats.TotalCards,
		ViewedCount:  stats.ViewedCount,
		Remaining:    stats.Remaining,
		CurrentIndex: stats.CurrentIndex,
		Completed:    stats.Completed,
		CardStats:    make([]cardStatResponse, 0, len(stats.CardStats)),
	}
	for _, cs := range stats.CardStats {
		resp.CardStats = append(resp.CardStats, cardStatResponse{
			CardID:     cs.CardID.String(),
			Viewed:     cs.Viewed,
			Passed:     cs.Passed,
			Failed:     cs.Failed,
			Skipped:    cs.Skipped,
			StarRating: cs.StarRating,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Clear handles DELETE /api/decks/{id}/session.
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.ClearSession(r.Context(), userID, deckID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Recent handles GET /api/decks/{id}/sessions.
func (h *SessionHandler) Recent(w http.ResponseWriter, r *http.Request) {
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

	logs, err := h.svc.RecentSessions(r.Context(), userID, deckID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]sessionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, sessionLogResponse{
			ID:         l.ID.String(),
			Method:     string(l.Method),
			TotalCards: l.TotalCards,
			Passed:     l.Passed,
			Failed:     l.Failed,
			Skipped:    l.Skipped,
			StartedAt:  l.StartedAt,
			FinishedAt: l.FinishedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": out})
}

func (h *SessionHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoActiveSession):
		writeError(w, http.StatusConflict, "no active session")
	case errors.Is(err, domain.ErrOutOfSequence):
		writeError(w, http.StatusConflict, "card out of sequence")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
