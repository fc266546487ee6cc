// Package searchcache shields the external metadata provider from
// repeated identical search queries.
package searchcache

import (
	"strings"
	"sync"
	"time"

	"pawshare/internal/common"
	"pawshare/internal/metadata"
)

type entry struct {
	results  []metadata.SearchResult
	cachedAt time.Time
}

// Cache is a process-local TTL cache keyed by normalized query. Entries
// are immutable once written; a racing duplicate write only wastes one
// provider call. Stale entries read as misses and are swept from the
// whole map when a write finds the map over its size bound.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	clock      common.Clock
}

// New creates a cache with the given TTL and soft size bound.
func New(ttl time.Duration, maxEntries int, clock common.Clock) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Normalize maps a raw query to its cache key.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached results for query, or ok=false on a miss or a
// stale entry.
func (c *Cache) Get(query string) ([]metadata.SearchResult, bool) {
	key := Normalize(query)

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().Sub(e.cachedAt) > c.ttl {
		return nil, false
	}
	return e.results, true
}

// Set stores results for query. When the map is over its size bound, all
// stale entries are evicted in one pass before the insert.
func (c *Cache) Set(query string, results []metadata.SearchResult) {
	key := Normalize(query)
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		for k, e := range c.entries {
			if now.Sub(e.cachedAt) > c.ttl {
				delete(c.entries, k)
			}
		}
	}
	c.entries[key] = entry{results: results, cachedAt: now}
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
