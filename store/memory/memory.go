// Package memory provides a map-backed SessionStore for tests and
// single-process use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/agentgraph-dev/agentgraph/store"
)

// SessionStore keeps records in memory behind a mutex. Records are copied
// on the way in and out, so callers cannot mutate stored state.
type SessionStore struct {
	mu      sync.RWMutex
	records map[string]*store.Record
}

var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty in-memory store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		records: make(map[string]*store.Record),
	}
}

// Save stores a record, replacing any existing record with the same ID.
func (s *SessionStore) Save(ctx context.Context, record *store.Record) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("record must have an ID")
	}
	s.mu.Lock()
	s.records[record.ID] = record.Clone()
	s.mu.Unlock()
	return nil
}

// Load retrieves a record by ID.
func (s *SessionStore) Load(ctx context.Context, recordID string) (*store.Record, error) {
	s.mu.RLock()
	record, ok := s.records[recordID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
	}
	return record.Clone(), nil
}

// List returns the session's records ordered by Seq.
func (s *SessionStore) List(ctx context.Context, sessionID string) ([]*store.Record, error) {
	s.mu.RLock()
	var out []*store.Record
	for _, record := range s.records {
		if record.SessionID == sessionID {
			out = append(out, record.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a single record.
func (s *SessionStore) Delete(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[recordID]; !ok {
		return fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
	}
	delete(s.records, recordID)
	return nil
}

// Clear removes every record of a session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, record := range s.records {
		if record.SessionID == sessionID {
			delete(s.records, id)
		}
	}
	return nil
}
