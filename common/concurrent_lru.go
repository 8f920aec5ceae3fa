package common

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// Cache is an LRU cache keyed by string. It is safe for concurrent access.
type Cache struct {
	mu     sync.Mutex
	cache  *lru.Cache
	hits   uint64
	misses uint64
}

// NewCache creates a new Cache.
// If maxEntries is zero, the cache has no limit and it's assumed
// that eviction is done by the caller.
func NewCache(maxEntries int) *Cache {
	return &Cache{cache: lru.New(maxEntries)}
}

// Add adds a value to the cache.
func (c *Cache) Add(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, value)
}

// Get looks up a key's value from the cache.
func (c *Cache) Get(key string) (value interface{}, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value, ok = c.cache.Get(key); ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

// Stats returns the number of lookups that hit and missed.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
