// Package cache provides bounded caches used by the panel.
package cache

import (
	"container/list"
	"sync"
)

// EvictFunc is called with every entry pushed out by capacity.
// It runs after the cache lock is released, so it may call back into the cache.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRU is a thread-safe least recently used cache with a fixed capacity.
// Get and Set both count as a use.
type LRU[K comparable, V any] struct {
	capacity int
	onEvict  EvictFunc[K, V]

	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List // front = most recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a cache holding at most capacity entries (minimum 1).
// onEvict may be nil.
func NewLRU[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		onEvict:  onEvict,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Get returns the value for key and marks it as most recent.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Peek returns the value for key without changing recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key as most recent. When the cache is full the
// least recent entry is dropped and handed to the eviction callback.
// It reports whether an entry was evicted.
func (c *LRU[K, V]) Set(key K, value V) bool {
	c.mu.Lock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		c.mu.Unlock()
		return false
	}

	var evicted *entry[K, V]
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			evicted = c.order.Remove(oldest).(*entry[K, V])
			delete(c.items, evicted.key)
		}
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.mu.Unlock()

	if evicted == nil {
		return false
	}
	if c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}
	return true
}

// Remove deletes key without calling the eviction callback.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Values returns all values from most to least recent.
func (c *LRU[K, V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]V, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*entry[K, V]).value)
	}
	return out
}

// Drain empties the cache and returns what it held, most recent first.
// The eviction callback is not called.
func (c *LRU[K, V]) Drain() []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]V, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*entry[K, V]).value)
	}
	c.items = make(map[K]*list.Element)
	c.order.Init()
	return out
}
