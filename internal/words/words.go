package words

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"wordem/internal/mode"
	"wordem/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ErrNotFound is returned when no word of the requested length exists for a language.
var ErrNotFound = errors.New("no word of that length")

// SQLiteStore looks words up in the words table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open, migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// IsWord reports whether word is in the word list of lang.
func (s *SQLiteStore) IsWord(ctx context.Context, word string, lang mode.Language) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE language = ? AND word = ?`,
		lang.Code(), Normalize(word),
	).Scan(&count)
	if err != nil {
		return false, store.Unavailable("look up word", err)
	}
	return count > 0, nil
}

// RandomWord picks a word of the given length from the list of lang.
func (s *SQLiteStore) RandomWord(ctx context.Context, lang mode.Language, length int) (string, error) {
	var word string
	err := s.db.QueryRowContext(ctx,
		`SELECT word FROM words WHERE language = ? AND length = ? ORDER BY RANDOM() LIMIT 1`,
		lang.Code(), length,
	).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %d letters in %s", ErrNotFound, length, lang)
	}
	if err != nil {
		return "", store.Unavailable("pick random word", err)
	}
	return word, nil
}

// Add inserts words into the list of lang, skipping duplicates and words
// that are not Acceptable. It returns the number of new words.
func (s *SQLiteStore) Add(ctx context.Context, lang mode.Language, list ...string) (int, error) {
	list = lo.Uniq(lo.Filter(lo.Map(list, func(w string, _ int) string { return Normalize(w) }),
		func(w string, _ int) bool { return Acceptable(w) }))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, store.Unavailable("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO words (language, word, length) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, store.Unavailable("prepare insert", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range list {
		res, err := stmt.ExecContext(ctx, lang.Code(), w, utf8.RuneCountInString(w))
		if err != nil {
			return 0, store.Unavailable("insert word", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, store.Unavailable("commit words", err)
	}
	log.Debug().Str("language", lang.Code()).Int("added", added).Msg("words added")
	return added, nil
}

// Clear removes every word of lang.
func (s *SQLiteStore) Clear(ctx context.Context, lang mode.Language) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE language = ?`, lang.Code()); err != nil {
		return store.Unavailable("clear words", err)
	}
	return nil
}

// Count returns the number of words of lang, per word length.
func (s *SQLiteStore) Count(ctx context.Context, lang mode.Language) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT length, COUNT(1) FROM words WHERE language = ? GROUP BY length`, lang.Code())
	if err != nil {
		return nil, store.Unavailable("count words", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var length, n int
		if err := rows.Scan(&length, &n); err != nil {
			return nil, store.Unavailable("scan word count", err)
		}
		counts[length] = n
	}
	if err := rows.Err(); err != nil {
		return nil, store.Unavailable("count words", err)
	}
	return counts, nil
}

// SeedDefaults fills the list of every language that has no words yet
// with the built-in defaults.
func (s *SQLiteStore) SeedDefaults(ctx context.Context) error {
	for _, lang := range mode.Languages() {
		counts, err := s.Count(ctx, lang)
		if err != nil {
			return err
		}
		if len(counts) > 0 {
			continue
		}
		added, err := s.Add(ctx, lang, Defaults(lang)...)
		if err != nil {
			return fmt.Errorf("seed %s defaults: %w", lang, err)
		}
		log.Info().Str("language", lang.Code()).Int("words", added).Msg("seeded default word list")
	}
	return nil
}
