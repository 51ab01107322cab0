package text

import (
	"cmp"
	"slices"
	"sync"
)

// DefaultGlyphCacheSize is the soft limit on cached glyph bitmaps per Font.
const DefaultGlyphCacheSize = 1024

// lru is a thread-safe LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used quarter of the
// entries is evicted.
//
// lru must not be copied after creation (has mutex).
type lru[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*lruEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

type lruEntry[V any] struct {
	value V
	atime int64
}

// newLRU creates a cache holding about softLimit entries; softLimit must be
// positive.
func newLRU[K comparable, V any](softLimit int) *lru[K, V] {
	return &lru[K, V]{
		entries:   make(map[K]*lruEntry[V]),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached value for key, calling create on a miss.
// create runs under the lock so each key is created once.
func (c *lru[K, V]) getOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value
	}

	value := create()
	c.entries[key] = &lruEntry[V]{value: value, atime: c.tick}
	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// len returns the number of cached entries.
func (c *lru[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest shrinks the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *lru[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.atime, b.atime) })
	for _, a := range all[:toEvict] {
		delete(c.entries, a.key)
	}
}

// glyphKey identifies a rasterized glyph of one Font.
type glyphKey struct {
	r    rune
	size float64
}

// glyphBitmap is a cached rasterization result.
type glyphBitmap struct {
	metrics  GlyphMetrics
	coverage []byte
}
