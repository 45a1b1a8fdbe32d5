package deck_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*deck.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return deck.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Deck{
		ID:          uuid.New(),
		UserID:      u.ID,
		Name:        "French A1",
		Description: "Beginner vocabulary",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Create(ctx, &d); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Name != d.Name {
		t.Errorf("Name mismatch: got %s, want %s", got.Name, d.Name)
	}
	if got.LastAccessed != nil {
		t.Errorf("LastAccessed: got %v, want nil", got.LastAccessed)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_ListByUser_OrderedByLastAccessed(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	d1 := testhelper.SeedDeck(t, pool, u.ID)
	d2 := testhelper.SeedDeck(t, pool, u.ID)
	d3 := testhelper.SeedDeck(t, pool, u.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	if err := repo.TouchLastAccessed(ctx, d1.ID, now.Add(-time.Hour)); err != nil {
		t.Fatalf("TouchLastAccessed(d1): %v", err)
	}
	if err := repo.TouchLastAccessed(ctx, d3.ID, now); err != nil {
		t.Fatalf("TouchLastAccessed(d3): %v", err)
	}

	got, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListByUser: got %d decks, want 3", len(got))
	}
	// Most recently accessed first, never-accessed last.
	if got[0].ID != d3.ID {
		t.Errorf("position 0: got %s, want %s", got[0].ID, d3.ID)
	}
	if got[1].ID != d1.ID {
		t.Errorf("position 1: got %s, want %s", got[1].ID, d1.ID)
	}
	if got[2].ID != d2.ID {
		t.Errorf("position 2: got %s, want %s", got[2].ID, d2.ID)
	}
}

func TestRepo_ListByUser_OnlyOwnDecks(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	mine := testhelper.SeedDeck(t, pool, owner.ID)
	testhelper.SeedDeck(t, pool, other.ID)

	got, err := repo.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListByUser: got %d decks, want 1", len(got))
	}
	if got[0].ID != mine.ID {
		t.Errorf("deck ID mismatch: got %s, want %s", got[0].ID, mine.ID)
	}
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	d := testhelper.SeedDeck(t, pool, u.ID)

	got, err := repo.Update(ctx, d.ID, "Renamed", "New description")
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Name: got %s, want Renamed", got.Name)
	}
	if got.Description != "New description" {
		t.Errorf("Description: got %s", got.Description)
	}
	if !got.UpdatedAt.After(d.UpdatedAt) {
		t.Errorf("UpdatedAt not bumped: %v <= %v", got.UpdatedAt, d.UpdatedAt)
	}
}

func TestRepo_TouchLastAccessed_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.TouchLastAccessed(context.Background(), uuid.New(), time.Now().UTC())
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Delete_CascadesCards(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	d := testhelper.SeedDeck(t, pool, u.ID)
	c := testhelper.SeedCard(t, pool, d.ID)

	if err := repo.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	var count int
	err := pool.QueryRow(ctx, `SELECT count(*) FROM cards WHERE id = $1`, c.ID).Scan(&count)
	if err != nil {
		t.Fatalf("count cards: %v", err)
	}
	if count != 0 {
		t.Errorf("cards not cascaded: %d remaining", count)
	}

	err = repo.Delete(ctx, d.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
