package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testRun(id string, started time.Time) *domain.IngestRun {
	return &domain.IngestRun{
		ID:          id,
		Dataset:     domain.DatasetCharacters,
		Range:       domain.IDRange{Start: 1, End: 3},
		Output:      "characters_processed.json",
		Saved:       2,
		FailedIDs:   []int{2},
		StartedAt:   started,
		CompletedAt: started.Add(2 * time.Second),
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
	assert.FileExists(t, store.Path())

	v, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNewStore_ReopenKeepsSchema(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.RunStore().Save(ctx, testRun("r1", time.Now())))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	run, err := second.RunStore().Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", run.ID)
}

func TestRunStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	runs := store.RunStore()

	started := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, testRun("abc", started)))

	got, err := runs.Get(ctx, "abc")
	require.NoError(t, err)

	assert.Equal(t, domain.DatasetCharacters, got.Dataset)
	assert.Equal(t, domain.IDRange{Start: 1, End: 3}, got.Range)
	assert.Equal(t, "characters_processed.json", got.Output)
	assert.Equal(t, 2, got.Saved)
	assert.Equal(t, []int{2}, got.FailedIDs)
	assert.True(t, started.Equal(got.StartedAt))
	assert.Equal(t, 2*time.Second, got.Duration())
}

func TestRunStore_SaveReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	runs := store.RunStore()

	run := testRun("abc", time.Now().UTC())
	require.NoError(t, runs.Save(ctx, run))

	run.Saved = 3
	run.FailedIDs = nil
	require.NoError(t, runs.Save(ctx, run))

	got, err := runs.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Saved)
	assert.Empty(t, got.FailedIDs)
}

func TestRunStore_GetNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.RunStore().Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunStore_SaveInvalid(t *testing.T) {
	store := setupTestStore(t)

	err := store.RunStore().Save(context.Background(), &domain.IngestRun{})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	runs := store.RunStore()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, testRun("old", base)))
	require.NoError(t, runs.Save(ctx, testRun("new", base.Add(time.Hour))))
	require.NoError(t, runs.Save(ctx, testRun("mid", base.Add(time.Minute))))

	all, err := runs.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)

	limited, err := runs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "new", limited[0].ID)
}
