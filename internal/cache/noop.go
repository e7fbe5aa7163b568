package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing. Used when no
// Redis is configured - all operations succeed but nothing is cached,
// so every lookup falls through to the store.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetReply always reports a cache miss.
func (c *NoOpCache) GetReply(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

// SetReply does nothing and always succeeds.
func (c *NoOpCache) SetReply(ctx context.Context, key string, reply string, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds.
func (c *NoOpCache) Close() error {
	return nil
}
