// Package session implements the study session engine: policy-driven card
// selection, the per-(user, deck) session state machine, outcome recording,
// and live progress statistics.
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error)
	ApplyAction(ctx context.Context, id uuid.UUID, action domain.CardAction) (*domain.Card, error)
	SetStarRating(ctx context.Context, id uuid.UUID, stars int) (*domain.Card, error)
}

type deckRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	TouchLastAccessed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionLogRepo interface {
	Create(ctx context.Context, log *domain.SessionLog) error
	ListRecentByDeck(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]domain.SessionLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config tunes engine behavior.
type Config struct {
	// HistorySize bounds the anti-repeat window (last N served card ids).
	HistorySize int
	// OverviewLimit caps the recent-sessions overview per deck.
	OverviewLimit int
}

// Service implements the study session engine.
type Service struct {
	cards         cardRepo
	decks         deckRepo
	logs          sessionLogRepo
	tx            txManager
	log           *slog.Logger
	store         *store
	historySize   int
	overviewLimit int
	now           func() time.Time
	newRand       func() *rand.Rand
}

// NewService creates a new session engine service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	logs sessionLogRepo,
	tx txManager,
	cfg Config,
) *Service {
	historySize := cfg.HistorySize
	if historySize < 1 {
		historySize = 2
	}
	overviewLimit := cfg.OverviewLimit
	if overviewLimit < 1 {
		overviewLimit = 3
	}

	return &Service{
		cards:         cards,
		decks:         decks,
		logs:          logs,
		tx:            tx,
		log:           log.With("service", "session"),
		store:         newStore(),
		historySize:   historySize,
		overviewLimit: overviewLimit,
		now:           func() time.Time { return time.Now().UTC() },
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}
