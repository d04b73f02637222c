package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wordem/internal/mode"
	"wordem/internal/store"

	"github.com/rs/zerolog/log"
)

// SQLiteStorage is an implementation of Store backed by the statistics table.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage wraps an open, migrated database.
func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// Read returns the value of a counter in a scope.
func (s *SQLiteStorage) Read(ctx context.Context, c Counter, scope mode.Scope) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM statistics WHERE scope = ? AND counter = ?`,
		string(scope), string(c),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, missing(c, scope)
	}
	if err != nil {
		return 0, store.Unavailable("read statistic", err)
	}
	return value, nil
}

// Increment adds one to a tally counter.
func (s *SQLiteStorage) Increment(ctx context.Context, c Counter, scope mode.Scope) error {
	if !c.Incrementable() {
		return errNotIncrementable(c)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE statistics SET value = value + 1 WHERE scope = ? AND counter = ?`,
		string(scope), string(c),
	)
	if err != nil {
		return store.Unavailable("increment statistic", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return missing(c, scope)
	}
	log.Debug().Str("scope", string(scope)).Str("counter", string(c)).Msg("statistic incremented")
	return nil
}

// RecomputeWinPercentage derives the win percentage from the played and won
// counters in one transaction.
func (s *SQLiteStorage) RecomputeWinPercentage(ctx context.Context, scope mode.Scope) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return store.Unavailable("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	read := func(c Counter) (int, error) {
		var v int
		err := tx.QueryRowContext(ctx,
			`SELECT value FROM statistics WHERE scope = ? AND counter = ?`,
			string(scope), string(c),
		).Scan(&v)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, missing(c, scope)
		}
		if err != nil {
			return 0, store.Unavailable("read statistic", err)
		}
		return v, nil
	}

	played, err := read(Played)
	if err != nil {
		return err
	}
	won, err := read(Won)
	if err != nil {
		return err
	}

	pct := WinPercentageOf(won, played)
	res, err := tx.ExecContext(ctx,
		`UPDATE statistics SET value = ? WHERE scope = ? AND counter = ?`,
		pct, string(scope), string(WinPercentage),
	)
	if err != nil {
		return store.Unavailable("update win percentage", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return missing(WinPercentage, scope)
	}
	if err := tx.Commit(); err != nil {
		return store.Unavailable("commit win percentage", err)
	}
	return nil
}

// Reset zeroes every counter of a scope.
func (s *SQLiteStorage) Reset(ctx context.Context, scope mode.Scope) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE statistics SET value = 0 WHERE scope = ?`, string(scope)); err != nil {
		return store.Unavailable("reset statistics", err)
	}
	log.Info().Str("scope", string(scope)).Msg("statistics reset")
	return nil
}

func missing(c Counter, scope mode.Scope) error {
	return fmt.Errorf("%w: statistic %q not found for scope %q", store.ErrUnavailable, c, scope)
}
