package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned when a key has no live entry.
var ErrMiss = errors.New("cache: miss")

// Cache defines the key-value operations the service needs. The only write
// coordination is delete-on-write: writers invalidate keys, readers repopulate.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
