package graph

import (
	"sync"
	"sync/atomic"

	"github.com/dustin/go-humanize"
)

// cacheKey is the process-wide cache's key: a raw type's identity paired
// with the config fingerprint that shaped how it was built.
type cacheKey struct {
	identity    any
	fingerprint string
}

// Cache is a read-mostly, process-wide map from (raw identity, config
// fingerprint) to Node. Multiple readers never need synchronization
// beyond the map's own locking since published nodes are immutable;
// writes are gated by a mutex. A write race (two goroutines miss the same
// key concurrently) is tolerated: both build, the first insert wins, and
// both callers observe structurally equivalent nodes.
type Cache struct {
	mu    sync.RWMutex
	nodes map[cacheKey]Node

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns an empty cache. The package also exposes a shared
// process-wide default via DefaultCache.
func NewCache() *Cache {
	return &Cache{nodes: make(map[cacheKey]Node)}
}

// DefaultCache is the process-wide cache used by the package-level
// Inspect* helpers when no explicit Cache is supplied.
var DefaultCache = NewCache()

func (c *Cache) get(identity any, fingerprint string) (Node, bool) {
	c.mu.RLock()
	n, ok := c.nodes[cacheKey{identity, fingerprint}]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return n, ok
}

// insert stores n under the key if absent, returning whichever node is
// now canonical for that key (the caller's n, or a concurrent winner).
func (c *Cache) insert(identity any, fingerprint string, n Node) Node {
	key := cacheKey{identity, fingerprint}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.nodes[key]; ok {
		return existing
	}
	c.nodes[key] = n
	return n
}

// CacheInfo reports process-wide cache statistics.
type CacheInfo struct {
	Hits     int64
	Misses   int64
	CurrSize int
}

// String renders a human-readable summary using humanized counts, the
// way a CLI or log line would want it.
func (i CacheInfo) String() string {
	return "cache hits=" + humanize.Comma(i.Hits) + " misses=" + humanize.Comma(i.Misses) + " size=" + humanize.Comma(int64(i.CurrSize))
}

// Info returns current cache statistics.
func (c *Cache) Info() CacheInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheInfo{Hits: c.hits.Load(), Misses: c.misses.Load(), CurrSize: len(c.nodes)}
}

// Clear empties the cache. References held by callers to pre-clear nodes
// remain valid but are disconnected from future cache hits.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodes = make(map[cacheKey]Node)
	c.hits.Store(0)
	c.misses.Store(0)
}

// CacheInfoDefault and CacheClearDefault are the package-level
// cache_info()/cache_clear() surface over DefaultCache.
func CacheInfoDefault() CacheInfo { return DefaultCache.Info() }
func CacheClearDefault()          { DefaultCache.Clear() }
