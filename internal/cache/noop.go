package cache

import (
	"context"
	"time"
)

// NoOpCache is a cache implementation that does nothing. Every lookup is a
// miss and every store succeeds, so callers need no special casing when
// caching is disabled.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetLevel(ctx context.Context, sentence string) (int, bool, error) {
	return 0, false, nil
}

func (c *NoOpCache) SetLevel(ctx context.Context, sentence string, level int, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
