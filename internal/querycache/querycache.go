// Package querycache is a keyed response cache for read operations. Keys are
// deterministic serializations of the request (encoded filter set, case id),
// so identical requests are served from cache until an explicit invalidation,
// and concurrent fetches for one key are collapsed into a single call.
//
// A stale response can never overwrite current data: results are stored only
// when no invalidation happened while the fetch was in flight, and a
// superseded request belongs to a different key in the first place.
package querycache

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache caches values of type V by string key.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	gen     uint64
	group   singleflight.Group
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// Get returns the cached value for key, or runs fetch and caches its result.
// Concurrent calls for the same key share one fetch. Fetch errors are
// returned to every waiter and nothing is cached.
func (c *Cache[V]) Get(ctx context.Context, key string, fetch func(ctx context.Context) (V, error)) (V, error) {
	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	gen := c.gen
	c.mu.RUnlock()

	// The generation is part of the flight key so callers arriving after an
	// invalidation never join a flight started before it.
	flightKey := strconv.FormatUint(gen, 10) + "|" + key
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	value := v.(V)
	c.mu.Lock()
	if c.gen == gen {
		c.entries[key] = value
	}
	c.mu.Unlock()
	return value, nil
}

// Peek reports the cached value for key without fetching.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Invalidate drops every entry whose key starts with prefix and prevents
// in-flight fetches from populating the cache. An empty prefix clears
// everything.
func (c *Cache[V]) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.gen++
}
