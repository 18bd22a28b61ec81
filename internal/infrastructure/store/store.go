package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bereketsol/inkwell/internal/domain/contract"
)

// RedisCacheStore implements contract.ICacheStore on top of redis. Every
// operation runs under its own short timeout so a slow or down redis degrades
// the caller to pass-through instead of blocking the request path.
type RedisCacheStore struct {
	rdb       *redis.Client
	opTimeout time.Duration
}

// NewRedisCacheStore creates a cache store. opTimeout bounds each single
// redis round trip.
func NewRedisCacheStore(rdb *redis.Client, opTimeout time.Duration) *RedisCacheStore {
	if opTimeout <= 0 {
		opTimeout = 250 * time.Millisecond
	}
	return &RedisCacheStore{rdb: rdb, opTimeout: opTimeout}
}

var _ contract.ICacheStore = (*RedisCacheStore)(nil)

func (s *RedisCacheStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// Get returns the stored bytes for key, reporting presence separately from
// transport errors.
func (s *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	b, err := s.rdb.Get(opCtx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Set stores value under key with the given TTL.
func (s *RedisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	return s.rdb.Set(opCtx, key, value, ttl).Err()
}

// Delete removes the given keys.
func (s *RedisCacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	return s.rdb.Del(opCtx, keys...).Err()
}

// DeletePattern removes every key matching the glob-style pattern using SCAN
// and pipelined DELs, so large namespaces are cleared without blocking redis.
func (s *RedisCacheStore) DeletePattern(ctx context.Context, pattern string) error {
	opCtx, cancel := context.WithTimeout(ctx, 4*s.opTimeout)
	defer cancel()

	iter := s.rdb.Scan(opCtx, 0, pattern, 1000).Iterator()
	pipe := s.rdb.Pipeline()
	n := 0
	for iter.Next(opCtx) {
		pipe.Del(opCtx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(opCtx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(opCtx)
	return err
}
