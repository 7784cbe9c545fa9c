package cache

import (
	"context"
	"time"

	domaincache "kinoauth/internal/domain/cache"
	"kinoauth/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisTTLStore is a concrete implementation of the TTLStore interface backed by Redis.
// Redis evicts expired keys itself, so no sweeper is needed.
type redisTTLStore struct {
	client *redis.Client
}

// NewTTLStore is the constructor for redisTTLStore.
func NewTTLStore(client *redis.Client) domaincache.TTLStore {
	return &redisTTLStore{client: client}
}

// Put stores a value under key for the given TTL.
func (s *redisTTLStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}

// Get returns the value stored under key, or ErrCacheMiss.
func (s *redisTTLStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domaincache.ErrCacheMiss
		}

		return "", errors.Wrap(err, "failed to get cache key")
	}

	return value, nil
}

// Delete removes a key.
func (s *redisTTLStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache key")
	}

	return nil
}
