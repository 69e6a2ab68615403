package session

import (
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/Kr0n4k/blog-project/internal/redis"
)

type fakeCache struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.values[key]
	if !ok {
		return "", redis.ErrNotFound
	}
	return val, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeCache) Del(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	for key := range f.values {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func TestRedisStoreRoundTrip(t *testing.T) {
	cache := newFakeCache()
	store := NewRedisStore(cache, "sess:", time.Hour)

	created := time.Now().Truncate(time.Millisecond)
	sess := Session{
		ID:        "abc",
		UserID:    "user-1",
		CreatedAt: created,
		Extra:     map[string]any{"userAgent": "test-browser"},
	}

	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, ok := cache.values["sess:abc"]; !ok {
		t.Fatal("record not stored under prefixed key")
	}
	if cache.ttls["sess:abc"] != time.Hour {
		t.Fatalf("ttl %v, want 1h", cache.ttls["sess:abc"])
	}

	got, err := store.Get(context.Background(), "abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("record not found after save")
	}
	if got.ID != "abc" || got.UserID != "user-1" {
		t.Fatalf("got %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt %v, want %v", got.CreatedAt, created)
	}
	if got.Extra["userAgent"] != "test-browser" {
		t.Fatalf("extra field lost: %+v", got.Extra)
	}
}

func TestRedisStoreGetMissing(t *testing.T) {
	store := NewRedisStore(newFakeCache(), "sess:", time.Hour)

	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestRedisStoreGetCorruptValue(t *testing.T) {
	cache := newFakeCache()
	cache.values["sess:bad"] = "{not json"
	store := NewRedisStore(cache, "sess:", time.Hour)

	_, err := store.Get(context.Background(), "bad")
	if !errors.Is(err, ErrInvalidSessionData) {
		t.Fatalf("got %v, want ErrInvalidSessionData", err)
	}
}

func TestRedisStoreSessionIDs(t *testing.T) {
	cache := newFakeCache()
	store := NewRedisStore(cache, "sess:", time.Hour)

	for _, id := range []string{"one", "two"} {
		if err := store.Save(context.Background(), Session{ID: id, UserID: "u"}); err != nil {
			t.Fatalf("save %q: %v", id, err)
		}
	}

	ids, err := store.SessionIDs(context.Background())
	if err != nil {
		t.Fatalf("sessionIDs: %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
	for _, id := range ids {
		if id != "one" && id != "two" {
			t.Fatalf("unexpected id %q (prefix not stripped?)", id)
		}
	}
}

func TestRedisStoreSaveRequiresID(t *testing.T) {
	store := NewRedisStore(newFakeCache(), "sess:", time.Hour)

	if err := store.Save(context.Background(), Session{UserID: "u"}); err == nil {
		t.Fatal("save accepted a record without an id")
	}
}
