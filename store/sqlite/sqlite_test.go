package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentgraph-dev/agentgraph/store"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	st, err := NewSessionStore(Options{
		Path: filepath.Join(t.TempDir(), "sessions.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionStoreRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec := store.NewRecord("sess-1", "kg-agent", "what is AI?", "Information about AI", 1)
	rec.Metadata = map[string]any{"entities": "1"}

	require.NoError(t, st.Save(ctx, rec))

	loaded, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, loaded.ID)
	assert.Equal(t, rec.SessionID, loaded.SessionID)
	assert.Equal(t, rec.Agent, loaded.Agent)
	assert.Equal(t, rec.Output, loaded.Output)
	assert.Equal(t, "1", loaded.Metadata["entities"])
}

func TestSessionStoreUpsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec := store.NewRecord("sess-1", "agent", "in", "first", 1)
	require.NoError(t, st.Save(ctx, rec))

	rec.Output = "second"
	require.NoError(t, st.Save(ctx, rec))

	loaded, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Output)

	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSessionStoreLoadMissing(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSessionStoreListOrdersBySeq(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "third", "r", 3)))
	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "first", "r", 1)))
	require.NoError(t, st.Save(ctx, store.NewRecord("sess-1", "a", "second", "r", 2)))
	require.NoError(t, st.Save(ctx, store.NewRecord("other", "a", "x", "y", 1)))

	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Input)
	assert.Equal(t, "second", records[1].Input)
	assert.Equal(t, "third", records[2].Input)

	empty, err := st.List(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSessionStoreNilMetadata(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec := store.NewRecord("sess-1", "a", "in", "out", 1)
	require.NoError(t, st.Save(ctx, rec))

	loaded, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded.Metadata)
}

func TestSessionStoreDeleteAndClear(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec1 := store.NewRecord("sess-1", "a", "1", "1", 1)
	rec2 := store.NewRecord("sess-1", "a", "2", "2", 2)
	keep := store.NewRecord("sess-2", "a", "3", "3", 1)
	require.NoError(t, st.Save(ctx, rec1))
	require.NoError(t, st.Save(ctx, rec2))
	require.NoError(t, st.Save(ctx, keep))

	require.NoError(t, st.Delete(ctx, rec1.ID))
	_, err := st.Load(ctx, rec1.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Clear(ctx, "sess-1"))
	records, err := st.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = st.List(ctx, "sess-2")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSessionStoreCustomTableName(t *testing.T) {
	st, err := NewSessionStore(Options{
		Path:      filepath.Join(t.TempDir(), "sessions.db"),
		TableName: "agent_runs",
	})
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	rec := store.NewRecord("sess-1", "a", "in", "out", 1)
	require.NoError(t, st.Save(ctx, rec))

	loaded, err := st.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, loaded.ID)
}
