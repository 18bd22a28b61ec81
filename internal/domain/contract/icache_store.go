package contract

import (
	"context"
	"time"
)

// ICacheStore defines the key/value cache operations the application depends
// on. Implementations must be safe to call when the backing store is
// unreachable: callers treat every error as a cache miss or a skipped write,
// never as a request failure.
type ICacheStore interface {
	// Get returns the stored bytes for key. The bool reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// DeletePattern removes every key matching the glob-style pattern,
	// e.g. "homepage:*".
	DeletePattern(ctx context.Context, pattern string) error
}
