package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agentgraph-dev/agentgraph/store"
)

// DBPool is the slice of pgxpool.Pool the store actually uses. Tests
// substitute a pgxmock pool through NewSessionStoreWithPool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// SessionStore implements store.SessionStore using PostgreSQL.
type SessionStore struct {
	pool      DBPool
	tableName string
}

var _ store.SessionStore = (*SessionStore)(nil)

// Options configures the Postgres connection.
type Options struct {
	ConnString string
	TableName  string // Default "transcripts"
}

// NewSessionStore connects a pool and bootstraps the schema.
func NewSessionStore(ctx context.Context, opts Options) (*SessionStore, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	s := NewSessionStoreWithPool(pool, opts.TableName)
	if err := s.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewSessionStoreWithPool wraps an existing pool. The schema is not
// bootstrapped; call InitSchema if the table may not exist yet.
func NewSessionStoreWithPool(pool DBPool, tableName string) *SessionStore {
	if tableName == "" {
		tableName = "transcripts"
	}
	return &SessionStore{
		pool:      pool,
		tableName: tableName,
	}
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
			metadata JSONB,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_session_id ON %s (session_id);
	`, s.tableName, s.tableName, s.tableName)

	_, err := s.pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *SessionStore) Close() {
	s.pool.Close()
}

// Save stores a record, replacing any row with the same ID.
func (s *SessionStore) Save(ctx context.Context, record *store.Record) error {
	metadataJSON, err := json.Marshal(record.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, session_id, agent, input, output, seq, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			agent = EXCLUDED.agent,
			input = EXCLUDED.input,
			output = EXCLUDED.output,
			seq = EXCLUDED.seq,
			metadata = EXCLUDED.metadata,
			created_at = EXCLUDED.created_at
	`, s.tableName)

	_, err = s.pool.Exec(ctx, query,
		record.ID,
		record.SessionID,
		record.Agent,
		record.Input,
		record.Output,
		record.Seq,
		metadataJSON,
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
		WHERE id = $1
	`, s.tableName)

	var record store.Record
	var metadataJSON []byte

	err := s.pool.QueryRow(ctx, query, recordID).Scan(
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
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}

	return &record, nil
}

// List returns the session's records ordered by Seq.
func (s *SessionStore) List(ctx context.Context, sessionID string) ([]*store.Record, error) {
	query := fmt.Sprintf(`
		SELECT id, session_id, agent, input, output, seq, metadata, created_at
		FROM %s
		WHERE session_id = $1
		ORDER BY seq ASC
	`, s.tableName)

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*store.Record
	for rows.Next() {
		var record store.Record
		var metadataJSON []byte

		err := rows.Scan(
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
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}

		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &record.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return records, nil
}

// Delete removes a single record.
func (s *SessionStore) Delete(ctx context.Context, recordID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.tableName)
	_, err := s.pool.Exec(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Clear removes every record of a session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE session_id = $1", s.tableName)
	_, err := s.pool.Exec(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
