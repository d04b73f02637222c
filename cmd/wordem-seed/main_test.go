package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(ctx, store.Memory)
	require.NoError(t, err)
	defer db.Close()

	ws := words.NewSQLiteStore(db)
	st := stats.NewSQLiteStorage(db)

	_, err = ws.Add(ctx, mode.English, "old")
	require.NoError(t, err)
	require.NoError(t, st.Increment(ctx, stats.Played, mode.Global))

	path := filepath.Join(t.TempDir(), "Words_en.txt")
	require.NoError(t, os.WriteFile(path, []byte("# english\ncat\nDog\nhouse\nx\n"), 0o644))

	opts := options{
		lists:      map[mode.Language][]string{mode.English: {path}},
		defaults:   true,
		resetStats: true,
	}
	require.NoError(t, seed(ctx, ws, st, opts))

	ok, err := ws.IsWord(ctx, "old", mode.English)
	require.NoError(t, err)
	assert.False(t, ok, "existing words are replaced")

	counts, err := ws.Count(ctx, mode.English)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{3: 2, 5: 1}, counts)

	es, err := ws.Count(ctx, mode.Spanish)
	require.NoError(t, err)
	assert.NotEmpty(t, es, "spanish falls back to the built-in list")

	played, err := st.Read(ctx, stats.Played, mode.Global)
	require.NoError(t, err)
	assert.Equal(t, 0, played)
}

func TestSeed_Keep(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(ctx, store.Memory)
	require.NoError(t, err)
	defer db.Close()

	ws := words.NewSQLiteStore(db)
	_, err = ws.Add(ctx, mode.Spanish, "sol")
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("mar\n"), 0o644))

	opts := options{lists: map[mode.Language][]string{mode.Spanish: {dir}}, keep: true}
	require.NoError(t, seed(ctx, ws, stats.NewSQLiteStorage(db), opts))

	counts, err := ws.Count(ctx, mode.Spanish)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[3])

	en, err := ws.Count(ctx, mode.English)
	require.NoError(t, err)
	assert.Empty(t, en)
}

func TestSeed_MissingFile(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(ctx, store.Memory)
	require.NoError(t, err)
	defer db.Close()

	opts := options{lists: map[mode.Language][]string{mode.English: {"/does/not/exist"}}}
	assert.Error(t, seed(ctx, words.NewSQLiteStore(db), stats.NewSQLiteStorage(db), opts))
}

func TestFormatCounts(t *testing.T) {
	assert.Equal(t, "3:2 5:10", formatCounts(map[int]int{5: 10, 3: 2}))
	assert.Equal(t, "", formatCounts(nil))
}
