// Package cache provides the TTL key/value store that memoizes extraction
// results so repeated UI requests do not re-fetch or re-parse.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Store is the backing key→payload map with an absolute expiry per key.
// Implementations guarantee their own internal consistency; concurrent
// get/set races resolve last-write-wins, which is acceptable because entries
// are immutable values.
type Store interface {
	// Get returns the payload and expiry for key. ok is false for absent
	// keys; expiry checking is the Cache's job, not the store's.
	Get(ctx context.Context, key string) (payload []byte, expiry time.Time, ok bool, err error)
	// Set replaces any prior entry for key along with its expiry.
	Set(ctx context.Context, key string, payload []byte, expiry time.Time) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Cache wraps a Store with TTL semantics. A zero TTL entry never hits.
type Cache struct {
	store Store
	clock tube.Clock
}

// New builds a Cache over store, using clock for expiry decisions.
func New(store Store, clock tube.Clock) *Cache {
	return &Cache{store: store, clock: clock}
}

// Close releases the backing store.
func (c *Cache) Close() error {
	return c.store.Close()
}

// Set serializes value and stores it under key for ttl.
func Set[T any](ctx context.Context, c *Cache, key string, value T, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return tube.DecodeError("cache set "+key, err)
	}
	return c.store.Set(ctx, key, payload, c.clock.Now().Add(ttl))
}

// Get loads the entry for key. A miss (absent, expired, or corrupt payload)
// returns ok=false; the error is non-nil only for corrupt payloads so callers
// can log them, and even then the miss stands — never a caller-facing
// failure.
func Get[T any](ctx context.Context, c *Cache, key string) (value T, ok bool, err error) {
	payload, expiry, found, err := c.store.Get(ctx, key)
	if err != nil || !found {
		return value, false, err
	}
	if !c.clock.Now().Before(expiry) {
		// Expired rows are reaped lazily on read.
		_ = c.store.Delete(ctx, key)
		return value, false, nil
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		_ = c.store.Delete(ctx, key)
		var zero T
		return zero, false, tube.DecodeError("cache get "+key, err)
	}
	return value, true, nil
}

// Invalidate drops the entry for key.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}
