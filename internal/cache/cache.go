// Package cache implements the bounded, time-expiring read cache that sits in
// front of the ledger's query paths. Entries are keyed by (operation, args) and
// carry a typed invalidation tag; every write path invalidates its entity's tag
// immediately after commit.
//
// The cache is fail-open by construction: a nil *QueryCache is a valid receiver
// and behaves as "always miss", so a missing cache can never block a sale.
package cache

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
)

// Tag identifies the entity family a cached read belongs to. Invalidation is
// resolved at compile time through these values instead of runtime name
// matching. TagOrder covers order-item reads as well — items never change
// independently of their order.
type Tag string

const (
	TagRegister Tag = "register"
	TagOrder    Tag = "order"
	TagClient   Tag = "client"
	TagEmployee Tag = "employee"
	TagCatalog  Tag = "catalog"
	TagSetting  Tag = "setting"
)

const (
	DefaultCapacity = 50
	DefaultTTL      = 120 * time.Second
)

type entry struct {
	op         string
	tag        Tag
	value      interface{}
	storedAt   time.Time
	lastAccess time.Time
}

// QueryCache is a bounded LRU cache with TTL expiry. Expired entries are not
// purged on read; they fall out on the next capacity eviction or tag
// invalidation.
type QueryCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[uint64]*entry

	now func() time.Time // overridable in tests
}

func New(capacity int, ttl time.Duration) *QueryCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &QueryCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[uint64]*entry, capacity),
		now:      time.Now,
	}
}

func key(op string, args []interface{}) uint64 {
	h := fnv.New64a()
	fmt.Fprint(h, op)
	for _, a := range args {
		fmt.Fprintf(h, "|%v", a)
	}
	return h.Sum64()
}

// Get returns the cached value for (op, args) when present and fresh.
func (c *QueryCache) Get(op string, args ...interface{}) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key(op, args)]
	if !ok {
		return nil, false
	}
	// TTL runs from the write, not the last read — a hot entry still expires.
	if c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	e.lastAccess = c.now()
	return e.value, true
}

// Set stores a value under (op, args), evicting the oldest-by-last-access
// entry when at capacity.
func (c *QueryCache) Set(op string, value interface{}, tag Tag, args ...interface{}) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(op, args)
	if _, exists := c.entries[k]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	now := c.now()
	c.entries[k] = &entry{op: op, tag: tag, value: value, storedAt: now, lastAccess: now}
}

// evictOldest removes the single entry with the oldest last access time.
// Caller must hold c.mu.
func (c *QueryCache) evictOldest() {
	var oldestKey uint64
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.lastAccess.Before(oldest) {
			oldestKey, oldest = k, e.lastAccess
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// InvalidateTag removes every entry recorded under tag, regardless of age.
func (c *QueryCache) InvalidateTag(tag Tag) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.tag == tag {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the cache.
func (c *QueryCache) InvalidateAll() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]*entry, c.capacity)
}

// Len reports the number of resident entries, expired ones included.
func (c *QueryCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
