package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 30 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// MemoryCache keeps levels in-process. Sentences hash to fixed-size keys so
// arbitrarily long inputs stay cheap to store.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemory creates an in-process cache with background expiry.
func NewMemory() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *MemoryCache) GetLevel(_ context.Context, sentence string) (int, bool, error) {
	v, found := c.store.Get(sentenceKey(sentence))
	if !found {
		return 0, false, nil
	}
	level, ok := v.(int)
	if !ok {
		return 0, false, nil
	}
	return level, true, nil
}

func (c *MemoryCache) SetLevel(_ context.Context, sentence string, level int, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultExpiration
	}
	c.store.Set(sentenceKey(sentence), level, ttl)
	return nil
}

func (c *MemoryCache) Close() error {
	c.store.Flush()
	return nil
}

func sentenceKey(sentence string) string {
	sum := sha256.Sum256([]byte(sentence))
	return hex.EncodeToString(sum[:])
}
