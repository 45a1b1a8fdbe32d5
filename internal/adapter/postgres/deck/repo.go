// Package deck implements the Deck repository using PostgreSQL.
package deck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const table = "decks"

var columns = []string{"id", "user_id", "name", "description", "last_accessed", "created_at", "updated_at"}

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new deck.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.UserID, d.Name, d.Description, d.LastAccessed, d.CreatedAt, d.UpdatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "deck", d.ID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "deck", d.ID)
	}
	return nil
}

// GetByID returns a deck by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var d domain.Deck
	err = q.QueryRow(ctx, sql, args...).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.LastAccessed, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}
	return &d, nil
}

// ListByUser returns all decks owned by the given user, most recently
// accessed first (never-accessed decks last, newest first among them).
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deck, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("last_accessed DESC NULLS LAST", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "deck", userID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "deck", userID)
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.LastAccessed, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "deck", userID)
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "deck", userID)
	}
	return decks, nil
}

// Update modifies name and description for the given deck.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, description string) (*domain.Deck, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("description", description).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var d domain.Deck
	err = q.QueryRow(ctx, sql, args...).
		Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.LastAccessed, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}
	return &d, nil
}

// TouchLastAccessed sets last_accessed to the given time.
func (r *Repo) TouchLastAccessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("last_accessed", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a deck. Cards cascade at the database level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
