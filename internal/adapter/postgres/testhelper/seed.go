package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDeck creates a deck for the given user. Returns a filled domain.Deck.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Deck {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	deck := domain.Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "Test Deck " + suffix,
		Description: "Seeded deck " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO decks (id, user_id, name, description, last_accessed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		deck.ID, deck.UserID, deck.Name, deck.Description, deck.LastAccessed, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck insert deck: %v", err)
	}

	return deck
}

// SeedCard creates a card in the given deck with zeroed counters and no
// star rating. Returns a filled domain.Card.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID) domain.Card {
	t.Helper()
	return SeedCardWithCounters(t, pool, deckID, 0, 0, 0, 0)
}

// SeedCardWithCounters creates a card with the given lifetime counters and
// star rating, for selection-ordering tests.
func SeedCardWithCounters(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID, pass, skip, fail, stars int) domain.Card {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:         uuid.New(),
		DeckID:     deckID,
		Front:      "Front " + suffix,
		Back:       "Back " + suffix,
		PassCount:  pass,
		SkipCount:  skip,
		FailCount:  fail,
		StarRating: stars,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, deck_id, front, back, link, pass_count, skip_count, fail_count, star_rating, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		card.ID, card.DeckID, card.Front, card.Back, card.Link,
		card.PassCount, card.SkipCount, card.FailCount, card.StarRating,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert card: %v", err)
	}

	return card
}

// SeedSessionLog creates a finished-session aggregate record.
func SeedSessionLog(t *testing.T, pool *pgxpool.Pool, userID, deckID uuid.UUID, finishedAt time.Time) domain.SessionLog {
	t.Helper()
	ctx := context.Background()

	log := domain.SessionLog{
		ID:         uuid.New(),
		UserID:     userID,
		DeckID:     deckID,
		Method:     domain.MethodRandom,
		TotalCards: 10,
		Passed:     6,
		Failed:     3,
		Skipped:    1,
		StartedAt:  finishedAt.Add(-5 * time.Minute),
		FinishedAt: finishedAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO session_logs (id, user_id, deck_id, method, total_cards, passed, failed, skipped, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		log.ID, log.UserID, log.DeckID, string(log.Method),
		log.TotalCards, log.Passed, log.Failed, log.Skipped,
		log.StartedAt, log.FinishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSessionLog insert: %v", err)
	}

	return log
}
