package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kr0n4k/blog-project/internal/redis"
)

type RedisStore struct {
	cache  Cache
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a cache-backed session store. Records live under
// <prefix><sessionID> and expire after ttl; expiry is silent, the store
// never emits an event for it.
func NewRedisStore(cache Cache, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	if s.ID == "" {
		return fmt.Errorf("session: missing session id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.cache.Set(ctx, r.key(s.ID), string(data), r.ttl)
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.cache.Get(ctx, r.key(sessionID))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionData, err)
	}
	s.ID = sessionID

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.cache.Del(ctx, r.key(sessionID))
}

func (r *RedisStore) SessionIDs(ctx context.Context) ([]string, error) {
	keys, err := r.cache.Keys(ctx, r.prefix+"*")
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, r.prefix))
	}
	return ids, nil
}
