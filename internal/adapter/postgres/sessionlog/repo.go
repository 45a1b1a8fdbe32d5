// Package sessionlog implements the SessionLog repository using PostgreSQL.
package sessionlog

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashdeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashdeck-backend/internal/domain"
)

const table = "session_logs"

var columns = []string{
	"id", "user_id", "deck_id", "method",
	"total_cards", "passed", "failed", "skipped",
	"started_at", "finished_at",
}

// Repo provides session-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the aggregate record of a finished session.
func (r *Repo) Create(ctx context.Context, l *domain.SessionLog) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.DeckID, string(l.Method),
			l.TotalCards, l.Passed, l.Failed, l.Skipped,
			l.StartedAt, l.FinishedAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "session_log", l.ID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session_log", l.ID)
	}
	return nil
}

// ListRecentByDeck returns the most recently finished sessions for a deck,
// newest first, capped at limit.
func (r *Repo) ListRecentByDeck(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]domain.SessionLog, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "deck_id": deckID}).
		OrderBy("finished_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "session_log", deckID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "session_log", deckID)
	}
	defer rows.Close()

	var logs []domain.SessionLog
	for rows.Next() {
		var l domain.SessionLog
		var method string
		err := rows.Scan(&l.ID, &l.UserID, &l.DeckID, &method,
			&l.TotalCards, &l.Passed, &l.Failed, &l.Skipped,
			&l.StartedAt, &l.FinishedAt)
		if err != nil {
			return nil, postgres.MapError(err, "session_log", deckID)
		}
		l.Method = domain.SessionMethod(method)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "session_log", deckID)
	}
	return logs, nil
}
