// Package file provides a SessionStore writing one JSON file per record,
// handy for demos whose transcripts should survive restarts and stay
// readable in an editor.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/agentgraph-dev/agentgraph/store"
)

// SessionStore keeps records under a directory as <record-id>.json files.
type SessionStore struct {
	mu  sync.Mutex
	dir string
}

var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates the directory if needed and returns a store over
// it.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory %s: %w", dir, err)
	}
	return &SessionStore{dir: dir}, nil
}

func (s *SessionStore) recordPath(recordID string) string {
	return filepath.Join(s.dir, recordID+".json")
}

// Save stores a record, replacing any file with the same ID.
func (s *SessionStore) Save(ctx context.Context, record *store.Record) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("record must have an ID")
	}
	if strings.ContainsRune(record.ID, os.PathSeparator) {
		return fmt.Errorf("record ID %q must not contain path separators", record.ID)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.recordPath(record.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}
	return nil
}

// Load retrieves a record by ID.
func (s *SessionStore) Load(ctx context.Context, recordID string) (*store.Record, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.recordPath(recordID))
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var record store.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", recordID, err)
	}
	return &record, nil
}

// List returns the session's records ordered by Seq. Files that are not
// valid record JSON are skipped.
func (s *SessionStore) List(ctx context.Context, sessionID string) ([]*store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read session directory: %w", err)
	}

	var out []*store.Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var record store.Record
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}
		if record.SessionID == sessionID {
			out = append(out, &record)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Seq != out[j].Seq {
			return out[i].Seq < out[j].Seq
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a single record file.
func (s *SessionStore) Delete(ctx context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(recordID))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
		}
		return fmt.Errorf("failed to delete record file: %w", err)
	}
	return nil
}

// Clear removes every record file of a session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	records, err := s.List(ctx, sessionID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range records {
		if err := os.Remove(s.recordPath(record.ID)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear record %s: %w", record.ID, err)
		}
	}
	return nil
}
