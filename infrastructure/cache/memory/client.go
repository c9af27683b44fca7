// ABOUTME: In-memory cache implementation using the patrickmn/go-cache library
// ABOUTME: Provides TTL support with background cleanup of expired items

package memory

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrCacheMiss is the error returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	cache *cache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// Items stored without an explicit TTL expire after defaultExpiration,
// and expired items are purged every cleanupInterval.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	valBytes, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Return a copy so callers cannot mutate the cached value
	result := make([]byte, len(valBytes))
	copy(result, valBytes)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
// A zero TTL stores the value indefinitely.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl == 0 {
		ttl = cache.NoExpiration
	}
	c.cache.Set(key, valueCopy, ttl)

	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// Count returns the number of items currently in the cache,
// including expired items not yet purged.
func (c *MemoryCache) Count() int {
	return c.cache.ItemCount()
}
