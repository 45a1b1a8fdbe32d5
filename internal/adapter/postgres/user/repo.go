// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email}, uuid.Nil)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, uuid.Nil)
}

func (r *Repo) getBy(ctx context.Context, pred squirrel.Eq, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	var u domain.User
	err = q.QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}
