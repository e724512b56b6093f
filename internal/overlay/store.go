package overlay

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Patches expire with the view session; nothing outlives it.
const patchTTL = 24 * time.Hour

// Store keeps one patch per view session. With redis configured the
// patch is serialized under a per-session key so several API instances
// see the same overlay; without redis it falls back to process memory.
type Store struct {
	redis *redis.Client

	mu    sync.RWMutex
	local map[string]*Patch
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redis: redisClient,
		local: map[string]*Patch{},
	}
}

func patchKey(sessionID string) string {
	return "overlay:" + sessionID
}

// Get returns the patch for a view session, creating an empty one on
// first use. Callers always receive a private copy; mutations only
// become visible through Save.
func (s *Store) Get(ctx context.Context, sessionID string) (*Patch, error) {
	if s.redis == nil {
		s.mu.RLock()
		p, ok := s.local[sessionID]
		s.mu.RUnlock()
		if ok {
			return clonePatch(p)
		}
		return NewPatch(), nil
	}

	raw, err := s.redis.Get(ctx, patchKey(sessionID)).Bytes()
	if err == redis.Nil {
		return NewPatch(), nil
	}
	if err != nil {
		return nil, err
	}
	p := NewPatch()
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) Save(ctx context.Context, sessionID string, p *Patch) error {
	if s.redis == nil {
		stored, err := clonePatch(p)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.local[sessionID] = stored
		s.mu.Unlock()
		return nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, patchKey(sessionID), raw, patchTTL).Err()
}

// clonePatch deep-copies through the same JSON shape the redis path
// round-trips.
func clonePatch(p *Patch) (*Patch, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	out := NewPatch()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if s.redis == nil {
		s.mu.Lock()
		delete(s.local, sessionID)
		s.mu.Unlock()
		return nil
	}
	return s.redis.Del(ctx, patchKey(sessionID)).Err()
}
