// Package cache defines the interface for the TTL key-value store backing
// token revocation and short-lived OAuth flow state.
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when a key is absent or its TTL has elapsed.
var ErrCacheMiss = errors.New("cache miss")

// TTLStore is a string key-value store where every entry expires.
type TTLStore interface {
	// Put stores a value under key for the given TTL, replacing any
	// previous value and its remaining TTL.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
