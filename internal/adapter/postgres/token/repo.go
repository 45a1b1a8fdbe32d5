// Package token implements the refresh-token repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token record.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}
	return nil
}

// GetByHash returns the token record matching the given hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var t domain.RefreshToken
	err = q.QueryRow(ctx, sql, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// DeleteByHash removes the token record matching the given hash.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) DeleteByHash(ctx context.Context, hash string) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refresh_token: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteByUserID removes all tokens for the given user.
func (r *Repo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes all tokens that expired before now and reports
// how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
