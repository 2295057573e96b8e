package cache

import (
	"context"
	"strings"
	"time"
)

// Store is an explicit query cache keyed by endpoint and parameters.
// Values are stored JSON-encoded; invalidation after writes is the
// caller's responsibility.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Key builds a cache key from an endpoint name and its parameters.
func Key(endpoint string, params ...string) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + strings.Join(params, "&")
}
