package session

import (
	"context"
	"time"
)

// Cache is the key-value surface the store runs on. The Redis client in
// internal/redis satisfies it; tests substitute an in-memory map.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// Store defines how session records are persisted and retrieved.
type Store interface {
	// Save persists the record. It must complete before the caller
	// responds to the client; the cookie is only meaningful once the
	// record is durable.
	Save(ctx context.Context, s Session) error

	// Get returns the record for the id, or (nil, nil) when absent.
	// A stored value that cannot be parsed yields ErrInvalidSessionData.
	Get(ctx context.Context, sessionID string) (*Session, error)

	Delete(ctx context.Context, sessionID string) error

	// SessionIDs enumerates the ids of every record in the store.
	SessionIDs(ctx context.Context) ([]string, error)
}
