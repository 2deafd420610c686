// Package cache memoizes rendered artifacts. Keys are content hashes,
// so entries never go stale and carry no expiration: a graph that
// changes hashes to a different key.
package cache

import (
	"bytes"
	"context"
	"sync"

	"github.com/Aayushjha0128/GraphSense/pkg/observability"
)

// Cache is the interface for render artifact caches.
type Cache interface {
	// Get retrieves the artifact stored under key. The second return
	// reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact under key, replacing any previous one.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes an artifact.
	Delete(ctx context.Context, key string) error

	// Close releases cache resources.
	Close() error
}

// MemoryCache is a process-local cache for server use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	if !ok {
		observability.Cache().OnCacheMiss(ctx, keyType(key))
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, keyType(key))
	return bytes.Clone(data), true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = bytes.Clone(data)
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *MemoryCache) Close() error { return nil }

var _ Cache = (*MemoryCache)(nil)

// NullCache never stores anything. Used when caching is disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return &NullCache{} }

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte) error { return nil }

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error { return nil }

// Close does nothing.
func (c *NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
