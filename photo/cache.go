package photo

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity bounds a Cache created with a non-positive capacity.
const DefaultCacheCapacity = 1 << 20

type cacheKey struct {
	a, b ID
}

// Cache memoizes Score keyed by the ids of both photos. Ids are stable and
// unique within a run, so an entry never changes once written. When full,
// the least recently used entry is evicted.
//
// A nil *Cache is valid and simply computes Score on every call.
type Cache struct {
	entries *lru.Cache[cacheKey, int]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewCache returns an empty cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[cacheKey, int](capacity)
	return &Cache{entries: entries}
}

// Score returns Score(p1, p2), served from the cache when possible.
func (c *Cache) Score(p1, p2 Photo) int {
	if c == nil {
		return Score(p1, p2)
	}

	k := cacheKey{a: p1.ID, b: p2.ID}
	if k.b.less(k.a) {
		k.a, k.b = k.b, k.a
	}
	if v, ok := c.entries.Get(k); ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	v := Score(p1, p2)
	c.entries.Add(k, v)
	return v
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}
