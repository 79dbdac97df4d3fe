package sqlite_test

import (
	"context"
	"testing"

	"github.com/lksrz/mcpfinder"
	"github.com/lksrz/mcpfinder/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))
	ctx := context.Background()

	entries := []*mcpfinder.Entry{
		{ID: "weather", SourceURL: "https://a.test", Fields: map[string]any{"command": "python"}},
		{ID: "fetch", SourceURL: "https://b.test", Fields: map[string]any{"args": []any{"x"}}},
	}

	require.NoError(t, store.Save(ctx, entries))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "weather", got[0].ID)
	assert.Equal(t, "https://a.test", got[0].SourceURL)
	assert.Equal(t, map[string]any{"command": "python"}, got[0].Fields)
	assert.Equal(t, "fetch", got[1].ID)
	assert.Equal(t, map[string]any{"args": []any{"x"}}, got[1].Fields)
}

func TestStore_SaveReplacesCollection(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []*mcpfinder.Entry{
		{ID: "old", SourceURL: "https://a.test", Fields: map[string]any{}},
	}))
	require.NoError(t, store.Save(ctx, []*mcpfinder.Entry{
		{ID: "new", SourceURL: "https://b.test", Fields: map[string]any{}},
	}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)
}

func TestStore_LoadEmpty(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SaveRejectsInvalidEntry(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	err := store.Save(context.Background(), []*mcpfinder.Entry{{ID: "no-source"}})
	require.Error(t, err)
	assert.Equal(t, mcpfinder.EINVALID, mcpfinder.ErrorCode(err))
}
