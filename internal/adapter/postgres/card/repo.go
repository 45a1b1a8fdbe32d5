// Package card implements the Card repository using PostgreSQL.
package card

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

const table = "cards"

var columns = []string{
	"id", "deck_id", "front", "back", "link",
	"pass_count", "skip_count", "fail_count", "star_rating",
	"created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new card.
func (r *Repo) Create(ctx context.Context, c *domain.Card) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.DeckID, c.Front, c.Back, c.Link,
			c.PassCount, c.SkipCount, c.FailCount, c.StarRating,
			c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "card", c.ID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "card", c.ID)
	}
	return nil
}

// CreateBatch inserts all cards in a single multi-row statement.
// Used by deck import; a no-op for an empty slice.
func (r *Repo) CreateBatch(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	insert := postgres.Builder().Insert(table).Columns(columns...)
	for _, c := range cards {
		insert = insert.Values(c.ID, c.DeckID, c.Front, c.Back, c.Link,
			c.PassCount, c.SkipCount, c.FailCount, c.StarRating,
			c.CreatedAt, c.UpdatedAt)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return postgres.MapError(err, "card", uuid.Nil)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "card", uuid.Nil)
	}
	return nil
}

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var c domain.Card
	if err := scanCard(q.QueryRow(ctx, sql, args...), &c); err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// ListByDeck returns all cards of a deck in creation order.
func (r *Repo) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deck_id": deckID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "card", deckID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "card", deckID)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := scanCard(rows, &c); err != nil {
			return nil, postgres.MapError(err, "card", deckID)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "card", deckID)
	}
	return cards, nil
}

// Update modifies the content fields of a card. Counters and the star
// rating are untouched here; they have dedicated write paths.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, front, back string, link *string) (*domain.Card, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("front", front).
		Set("back", back).
		Set("link", link).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var c domain.Card
	if err := scanCard(q.QueryRow(ctx, sql, args...), &c); err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// ApplyAction atomically increments exactly one lifetime counter.
// The increment happens in SQL so concurrent sessions never lose updates.
func (r *Repo) ApplyAction(ctx context.Context, id uuid.UUID, action domain.CardAction) (*domain.Card, error) {
	var column string
	switch action {
	case domain.ActionIncrementPass:
		column = "pass_count"
	case domain.ActionIncrementSkip:
		column = "skip_count"
	case domain.ActionIncrementFail:
		column = "fail_count"
	default:
		return nil, fmt.Errorf("card %s: unknown action %q: %w", id, action, domain.ErrValidation)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set(column, squirrel.Expr(column+" + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var c domain.Card
	if err := scanCard(q.QueryRow(ctx, sql, args...), &c); err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// SetStarRating sets the star rating for a card. The 0..5 range is
// enforced both here and by a database check constraint.
func (r *Repo) SetStarRating(ctx context.Context, id uuid.UUID, stars int) (*domain.Card, error) {
	if stars < 0 || stars > domain.MaxStarRating {
		return nil, fmt.Errorf("card %s: star rating %d out of range: %w", id, stars, domain.ErrValidation)
	}

	sql, args, err := postgres.Builder().
		Update(table).
		Set("star_rating", stars).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var c domain.Card
	if err := scanCard(q.QueryRow(ctx, sql, args...), &c); err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return &c, nil
}

// Delete removes a card.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "card", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner, c *domain.Card) error {
	return s.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &c.Link,
		&c.PassCount, &c.SkipCount, &c.FailCount, &c.StarRating,
		&c.CreatedAt, &c.UpdatedAt)
}
