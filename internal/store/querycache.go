package store

import "sync"

// QueryCache memoizes derived query results (expense balances, allocation
// summaries) so consumers do not recompute them on every read. The sync
// coordinator invalidates the whole cache after adopting remote data, since
// any cached derivation may be based on stale local state.
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]any
}

// NewQueryCache returns an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]any)}
}

// Get returns the cached value for key, if present.
func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a derived value under key.
func (c *QueryCache) Put(key string, value any) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// Invalidate drops every cached entry.
func (c *QueryCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]any)
	c.mu.Unlock()
}
