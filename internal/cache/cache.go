package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// LRU is a thread-safe cache that evicts the least recently used entry
// once it holds more than its capacity.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	head     *entry[K, V] // most recently used
	tail     *entry[K, V] // least recently used
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// entry is a cached value linked into the recency list.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// New creates an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		entries:  make(map[K]*entry[K, V]),
		capacity: capacity,
	}
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. Errors from create are returned and not cached. hit reports
// whether the value came from the cache.
//
// create runs with the cache locked, so concurrent callers asking for the
// same key never build it twice.
func (c *LRU[K, V]) GetOrCreate(key K, create func() (V, error)) (value V, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.moveToFront(e)
		c.hits.Add(1)
		return e.value, true, nil
	}
	c.misses.Add(1)

	value, err = create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.insert(key, value)
	return value, false, nil
}

// DeleteFunc removes every entry whose key matches del and returns the
// number removed.
func (c *LRU[K, V]) DeleteFunc(del func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, e := range c.entries {
		if !del(key) {
			continue
		}
		c.unlink(e)
		delete(c.entries, key)
		n++
	}
	return n
}

// Clear removes every entry. Statistics are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.head, c.tail = nil, nil
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   rate,
		Evictions: c.evictions.Load(),
	}
}

// insert adds a new entry at the front and evicts from the tail.
// Caller must hold c.mu.
func (c *LRU[K, V]) insert(key K, value V) {
	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.pushFront(e)
	for len(c.entries) > c.capacity && c.tail != nil {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
		c.evictions.Add(1)
	}
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *LRU[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that found nothing.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped for capacity.
	Evictions uint64
}
