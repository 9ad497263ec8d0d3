package store

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record ID is not in the store. Backends
// wrap it, so check with errors.Is.
var ErrNotFound = errors.New("record not found")

// Record is one agent interaction inside a session: the input an agent was
// given and the output it produced, plus whatever the caller wants to keep
// alongside (tool names, path strings, step transcripts).
type Record struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Agent     string         `json:"agent"`
	Input     string         `json:"input"`
	Output    string         `json:"output"`
	Seq       int            `json:"seq"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewRecord creates a record with a fresh UUID and the current time.
func NewRecord(sessionID, agent, input, output string, seq int) *Record {
	return &Record{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Agent:     agent,
		Input:     input,
		Output:    output,
		Seq:       seq,
		CreatedAt: time.Now(),
	}
}

// Clone returns a deep copy, so stored records cannot be mutated through
// slices handed to callers.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	if r.Metadata != nil {
		out.Metadata = make(map[string]any, len(r.Metadata))
		maps.Copy(out.Metadata, r.Metadata)
	}
	return &out
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// SessionStore persists agent session records. Implementations live in the
// memory, file, sqlite, redis and postgres subpackages.
type SessionStore interface {
	// Save stores a record, replacing any record with the same ID.
	Save(ctx context.Context, record *Record) error

	// Load retrieves a record by ID.
	Load(ctx context.Context, recordID string) (*Record, error)

	// List returns all records of a session ordered by Seq.
	List(ctx context.Context, sessionID string) ([]*Record, error)

	// Delete removes a single record.
	Delete(ctx context.Context, recordID string) error

	// Clear removes every record of a session.
	Clear(ctx context.Context, sessionID string) error
}
