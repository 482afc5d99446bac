package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles search_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseSearch atomically checks the monthly quota and deducts one search.
// It resets the counter to DefaultSearches when last_reset_month is behind
// the current month. Returns ErrInsufficientSearches when 0 rows are
// updated (quota exhausted or user absent).
func (s *Store) UseSearch(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE search_quota SET
			searches_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE searches_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR searches_remaining > 0)
	`, now, DefaultSearches, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientSearches
	}
	return nil
}

// EnsureUser inserts a new search_quota row for uid with the default
// allowance. If the row already exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_quota (uid, searches_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultSearches, time.Now().Format("2006-01"))
	return err
}
