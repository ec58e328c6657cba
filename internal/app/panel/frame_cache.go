package panel

import (
	"fmt"
	"sync/atomic"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/infrastructure/cache"
)

// CachePolicy selects how the frame cache bounds itself.
type CachePolicy string

const (
	// CachePolicyUnbounded keeps every opened surface until the panel closes.
	CachePolicyUnbounded CachePolicy = "unbounded"
	// CachePolicyLRU keeps at most N surfaces and releases the least recently opened.
	CachePolicyLRU CachePolicy = "lru"
)

// FrameCache maps a site URL to its live surface.
// It never holds two surfaces for the same URL.
type FrameCache interface {
	// Get returns the surface for url and marks it as most recently used.
	Get(url string) (port.Surface, bool)
	// Put stores a newly created surface. Surfaces pushed out by the policy
	// are released before Put returns.
	Put(url string, s port.Surface)
	// Surfaces returns every cached surface.
	Surfaces() []port.Surface
	Len() int
	// Evictions returns how many surfaces the policy has released.
	Evictions() int
	// Drain empties the cache and returns its surfaces without releasing them.
	Drain() []port.Surface
}

// NewFrameCache builds the cache for policy. maxSurfaces only applies to lru.
func NewFrameCache(policy CachePolicy, maxSurfaces int) (FrameCache, error) {
	switch policy {
	case "", CachePolicyUnbounded:
		return newUnboundedCache(), nil
	case CachePolicyLRU:
		if maxSurfaces <= 0 {
			return nil, fmt.Errorf("lru frame cache needs a positive size, got %d", maxSurfaces)
		}
		return newLRUCache(maxSurfaces), nil
	default:
		return nil, fmt.Errorf("unknown frame cache policy %q", policy)
	}
}

// unboundedCache keeps insertion order so Surfaces is deterministic.
type unboundedCache struct {
	byURL map[string]port.Surface
	order []string
}

func newUnboundedCache() *unboundedCache {
	return &unboundedCache{byURL: make(map[string]port.Surface)}
}

func (c *unboundedCache) Get(url string) (port.Surface, bool) {
	s, ok := c.byURL[url]
	return s, ok
}

func (c *unboundedCache) Put(url string, s port.Surface) {
	if _, exists := c.byURL[url]; !exists {
		c.order = append(c.order, url)
	}
	c.byURL[url] = s
}

func (c *unboundedCache) Surfaces() []port.Surface {
	out := make([]port.Surface, 0, len(c.order))
	for _, url := range c.order {
		out = append(out, c.byURL[url])
	}
	return out
}

func (c *unboundedCache) Len() int       { return len(c.byURL) }
func (c *unboundedCache) Evictions() int { return 0 }

func (c *unboundedCache) Drain() []port.Surface {
	out := c.Surfaces()
	c.byURL = make(map[string]port.Surface)
	c.order = nil
	return out
}

type lruCache struct {
	lru       *cache.LRU[string, port.Surface]
	evictions atomic.Int64
}

func newLRUCache(size int) *lruCache {
	c := &lruCache{}
	c.lru = cache.NewLRU[string, port.Surface](size, func(_ string, s port.Surface) {
		c.evictions.Add(1)
		s.Release()
	})
	return c
}

func (c *lruCache) Get(url string) (port.Surface, bool) { return c.lru.Get(url) }
func (c *lruCache) Put(url string, s port.Surface)      { c.lru.Set(url, s) }
func (c *lruCache) Surfaces() []port.Surface            { return c.lru.Values() }
func (c *lruCache) Len() int                            { return c.lru.Len() }
func (c *lruCache) Evictions() int                      { return int(c.evictions.Load()) }
func (c *lruCache) Drain() []port.Surface               { return c.lru.Drain() }
