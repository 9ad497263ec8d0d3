package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentgraph-dev/agentgraph/store"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	st, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec := store.NewRecord("sess-1", "react", "2 + 2", "4", 1)
	rec.Metadata = map[string]any{"tool": "calculator"}
	require.NoError(t, st.Save(ctx, rec))

	loaded, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, loaded.ID)
	assert.Equal(t, "4", loaded.Output)
	assert.Equal(t, "calculator", loaded.Metadata["tool"])
}

func TestSessionStoreWritesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	st, err := NewSessionStore(dir)
	require.NoError(t, err)

	rec := store.NewRecord("sess-1", "react", "in", "out", 1)
	require.NoError(t, st.Save(context.Background(), rec))

	data, err := os.ReadFile(filepath.Join(dir, rec.ID+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id": "sess-1"`)
}

func TestSessionStoreListFiltersAndOrders(t *testing.T) {
	st, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "second", "r", 2)))
	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "first", "r", 1)))
	require.NoError(t, st.Save(ctx, store.NewRecord("sess-2", "a", "other", "r", 1)))

	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Input)
	assert.Equal(t, "second", records[1].Input)
}

func TestSessionStoreListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := NewSessionStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "in", "out", 1)))

	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSessionStoreDeleteAndClear(t *testing.T) {
	st, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	rec1 := store.NewRecord("sess-1", "a", "1", "1", 1)
	rec2 := store.NewRecord("sess-1", "a", "2", "2", 2)
	keep := store.NewRecord("sess-2", "a", "3", "3", 1)
	require.NoError(t, st.Save(ctx, rec1))
	require.NoError(t, st.Save(ctx, rec2))
	require.NoError(t, st.Save(ctx, keep))

	require.NoError(t, st.Delete(ctx, rec1.ID))
	_, err = st.Load(ctx, rec1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, st.Delete(ctx, rec1.ID), store.ErrNotFound)

	require.NoError(t, st.Clear(ctx, "sess-1"))
	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = st.List(ctx, "sess-2")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSessionStoreRejectsPathSeparators(t *testing.T) {
	st, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	rec := store.NewRecord("sess-1", "a", "in", "out", 1)
	rec.ID = "../escape"
	assert.Error(t, st.Save(context.Background(), rec))
}
