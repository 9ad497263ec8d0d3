package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agentgraph-dev/agentgraph/store"
)

// SessionStore implements store.SessionStore on Redis. Records live as
// JSON values under per-record keys; a set per session indexes the record
// IDs so List and Clear do not scan the keyspace.
type SessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ store.SessionStore = (*SessionStore)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // Key prefix, default "agentgraph:"
	TTL      time.Duration // Expiration for records, default 0 (no expiration)
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(opts Options) *SessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "agentgraph:"
	}

	return &SessionStore{
		client: client,
		prefix: prefix,
		ttl:    opts.TTL,
	}
}

// Close closes the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

func (s *SessionStore) recordKey(id string) string {
	return fmt.Sprintf("%srecord:%s", s.prefix, id)
}

func (s *SessionStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("%ssession:%s:records", s.prefix, sessionID)
}

// Save stores a record and indexes it under its session.
func (s *SessionStore) Save(ctx context.Context, record *store.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.recordKey(record.ID), data, s.ttl)

	sessionKey := s.sessionKey(record.SessionID)
	pipe.SAdd(ctx, sessionKey, record.ID)
	if s.ttl > 0 {
		pipe.Expire(ctx, sessionKey, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save record to redis: %w", err)
	}
	return nil
}

// Load retrieves a record by ID.
func (s *SessionStore) Load(ctx context.Context, recordID string) (*store.Record, error) {
	data, err := s.client.Get(ctx, s.recordKey(recordID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
		}
		return nil, fmt.Errorf("failed to load record from redis: %w", err)
	}

	var record store.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

// List returns the session's records ordered by Seq. The index set is
// unordered, so records are fetched with MGET and sorted after decoding;
// IDs whose value expired are dropped silently.
func (s *SessionStore) List(ctx context.Context, sessionID string) ([]*store.Record, error) {
	ids, err := s.client.SMembers(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records for session %s: %w", sessionID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.recordKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	var records []*store.Record
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}
		var record store.Record
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })
	return records, nil
}

// Delete removes a single record and its index entry.
func (s *SessionStore) Delete(ctx context.Context, recordID string) error {
	// Load first so the session index entry can be removed too.
	record, err := s.Load(ctx, recordID)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.recordKey(recordID))
	pipe.SRem(ctx, s.sessionKey(record.SessionID), recordID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Clear removes every record of a session along with the index set.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	sessionKey := s.sessionKey(sessionID)
	ids, err := s.client.SMembers(ctx, sessionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get records for clearing: %w", err)
	}

	pipe := s.client.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, s.recordKey(id))
	}
	pipe.Del(ctx, sessionKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}
	return nil
}
