package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

// SessionStore persists one SessionRecord per browser session, the
// server-side analogue of a single local-storage key. Redis-backed when
// configured, process memory otherwise.
type SessionStore struct {
	redis *redis.Client

	mu    sync.RWMutex
	local map[string]SessionRecord
}

func NewSessionStore(redisClient *redis.Client) *SessionStore {
	return &SessionStore{
		redis: redisClient,
		local: map[string]SessionRecord{},
	}
}

func sessionKey(sessionID string) string {
	return "auth:session:" + sessionID
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, record SessionRecord) error {
	if s.redis == nil {
		s.mu.Lock()
		s.local[sessionID] = record
		s.mu.Unlock()
		return nil
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sessionKey(sessionID), raw, 0).Err()
}

// Load returns the persisted record, reporting absence without error.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (SessionRecord, bool, error) {
	if s.redis == nil {
		s.mu.RLock()
		record, ok := s.local[sessionID]
		s.mu.RUnlock()
		return record, ok, nil
	}
	raw, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return SessionRecord{}, false, nil
	}
	if err != nil {
		return SessionRecord{}, false, err
	}
	var record SessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return SessionRecord{}, false, err
	}
	return record, true, nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if s.redis == nil {
		s.mu.Lock()
		delete(s.local, sessionID)
		s.mu.Unlock()
		return nil
	}
	return s.redis.Del(ctx, sessionKey(sessionID)).Err()
}
