package cache

import (
	"context"
	"time"
)

// Cache memoizes classification results so that repeated sentences cost one
// API call instead of many.
type Cache interface {
	// GetLevel retrieves a cached level for a sentence. The second return
	// is false on a miss.
	GetLevel(ctx context.Context, sentence string) (int, bool, error)

	// SetLevel stores the level for a sentence with TTL.
	SetLevel(ctx context.Context, sentence string, level int, ttl time.Duration) error

	// Close releases the cache.
	Close() error
}
