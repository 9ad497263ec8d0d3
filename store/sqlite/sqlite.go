package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/agentgraph-dev/agentgraph/store"
)

// SessionStore implements store.SessionStore using SQLite.
type SessionStore struct {
	db        *sql.DB
	tableName string
}

var _ store.SessionStore = (*SessionStore)(nil)

// Options configures the SQLite connection.
type Options struct {
	Path      string
	TableName string // Default "transcripts"
}

// NewSessionStore opens (or creates) the database and bootstraps the
// schema.
func NewSessionStore(opts Options) (*SessionStore, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "transcripts"
	}

	s := &SessionStore{
		db:        db,
		tableName: tableName,
	}

	if err := s.InitSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// InitSchema creates the transcript table and its session index if they do
// not exist.
func (s *SessionStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			agent TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			seq INTEGER NOT NULL,
			metadata TEXT,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_session_id ON %s (session_id);
	`, s.tableName, s.tableName, s.tableName)

	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

// Save stores a record, replacing any row with the same ID.
func (s *SessionStore) Save(ctx context.Context, record *store.Record) error {
	metadataJSON, err := json.Marshal(record.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, session_id, agent, input, output, seq, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_id = excluded.session_id,
			agent = excluded.agent,
			input = excluded.input,
			output = excluded.output,
			seq = excluded.seq,
			metadata = excluded.metadata,
			created_at = excluded.created_at
	`, s.tableName)

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.SessionID,
		record.Agent,
		record.Input,
		record.Output,
		record.Seq,
		string(metadataJSON),
		record.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// Load retrieves a record by ID.
func (s *SessionStore) Load(ctx context.Context, recordID string) (*store.Record, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, agent, input, output, seq, metadata, created_at
		FROM %s
		WHERE id = ?
	`, s.tableName)

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, recordID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return record, nil
}

// List returns the session's records ordered by Seq.
func (s *SessionStore) List(ctx context.Context, sessionID string) ([]*store.Record, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, agent, input, output, seq, metadata, created_at
		FROM %s
		WHERE session_id = ?
		ORDER BY seq ASC
	`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*store.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return records, nil
}

// Delete removes a single record.
func (s *SessionStore) Delete(ctx context.Context, recordID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.tableName)
	_, err := s.db.ExecContext(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Clear removes every record of a session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE session_id = ?", s.tableName)
	_, err := s.db.ExecContext(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*store.Record, error) {
	var record store.Record
	var metadataJSON string

	err := row.Scan(
		&record.ID,
		&record.SessionID,
		&record.Agent,
		&record.Input,
		&record.Output,
		&record.Seq,
		&metadataJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &record.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	return &record, nil
}
