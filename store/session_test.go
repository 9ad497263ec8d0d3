package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	rec := NewRecord("sess-1", "kg-agent", "in", "out", 3)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "sess-1", rec.SessionID)
	assert.Equal(t, "kg-agent", rec.Agent)
	assert.Equal(t, 3, rec.Seq)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Nil(t, rec.Metadata)

	other := NewRecord("sess-1", "kg-agent", "in", "out", 4)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	rec := NewRecord("sess-1", "a", "in", "out", 1)
	rec.Metadata = map[string]any{"key": "value"}

	clone := rec.Clone()
	require.NotSame(t, rec, clone)
	assert.Equal(t, rec, clone)

	clone.Metadata["key"] = "changed"
	assert.Equal(t, "value", rec.Metadata["key"])

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
}

func TestNewSessionID(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
