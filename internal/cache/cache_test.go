package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clockFor pins the cache clock to a mutable instant.
func clockFor(c *QueryCache) *time.Time {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return &now
}

func TestGetReturnsCachedValue(t *testing.T) {
	c := New(10, time.Minute)
	c.Set("Order.FindByID", "cached", TagOrder, uint(7))

	v, ok := c.Get("Order.FindByID", uint(7))
	require.True(t, ok)
	assert.Equal(t, "cached", v)

	// Different args miss.
	_, ok = c.Get("Order.FindByID", uint(8))
	assert.False(t, ok)
}

func TestExpiredEntryMisses(t *testing.T) {
	c := New(10, 2*time.Minute)
	now := clockFor(c)

	c.Set("Client.List", []string{"a"}, TagClient, true)

	*now = now.Add(119 * time.Second)
	_, ok := c.Get("Client.List", true)
	assert.True(t, ok)

	*now = now.Add(2 * time.Second)
	_, ok = c.Get("Client.List", true)
	assert.False(t, ok, "entry past its TTL must miss")
	// Expired entries are not purged on read.
	assert.Equal(t, 1, c.Len())
}

func TestTTLRunsFromWriteNotLastRead(t *testing.T) {
	c := New(10, time.Minute)
	now := clockFor(c)

	c.Set("Product.List", "menu", TagCatalog, true)

	// Keep the entry hot with reads just under the TTL.
	for i := 0; i < 3; i++ {
		*now = now.Add(30 * time.Second)
		c.Get("Product.List", true)
	}
	_, ok := c.Get("Product.List", true)
	assert.False(t, ok, "reads must not extend the TTL")
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(3, time.Hour)
	now := clockFor(c)

	for i := 0; i < 3; i++ {
		c.Set("op", i, TagOrder, i)
		*now = now.Add(time.Second)
	}
	// Touch entry 0 so entry 1 becomes the oldest by access.
	_, ok := c.Get("op", 0)
	require.True(t, ok)
	*now = now.Add(time.Second)

	c.Set("op", 3, TagOrder, 3)

	assert.Equal(t, 3, c.Len())
	_, ok = c.Get("op", 1)
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("op", 0)
	assert.True(t, ok)
	_, ok = c.Get("op", 3)
	assert.True(t, ok)
}

func TestInvalidateTagRemovesOnlyThatTag(t *testing.T) {
	c := New(10, time.Hour)
	c.Set("Order.List", "orders", TagOrder, "a")
	c.Set("Order.FindByID", "order", TagOrder, uint(1))
	c.Set("Client.List", "clients", TagClient, true)

	c.InvalidateTag(TagOrder)

	_, ok := c.Get("Order.List", "a")
	assert.False(t, ok)
	_, ok = c.Get("Order.FindByID", uint(1))
	assert.False(t, ok)
	_, ok = c.Get("Client.List", true)
	assert.True(t, ok, "other tags must survive")
}

func TestInvalidateAll(t *testing.T) {
	c := New(10, time.Hour)
	for i := 0; i < 5; i++ {
		c.Set("op", i, TagCatalog, i)
	}
	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}

func TestNilCacheFailsOpen(t *testing.T) {
	var c *QueryCache

	// None of these may panic; Get always misses.
	c.Set("op", "v", TagOrder, 1)
	_, ok := c.Get("op", 1)
	assert.False(t, ok)
	c.InvalidateTag(TagOrder)
	c.InvalidateAll()
	assert.Equal(t, 0, c.Len())
}

func TestDefaultsApplied(t *testing.T) {
	c := New(0, 0)
	assert.Equal(t, DefaultCapacity, c.capacity)
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestKeyDistinguishesArgOrder(t *testing.T) {
	c := New(10, time.Hour)
	c.Set("op", "ab", TagOrder, "a", "b")

	_, ok := c.Get("op", "b", "a")
	assert.False(t, ok)
	v, ok := c.Get("op", "a", "b")
	require.True(t, ok)
	assert.Equal(t, "ab", v)
}

func TestEvictionUnderChurn(t *testing.T) {
	c := New(5, time.Hour)
	now := clockFor(c)
	for i := 0; i < 100; i++ {
		c.Set("op", i, TagOrder, fmt.Sprintf("k%d", i))
		*now = now.Add(time.Millisecond)
	}
	assert.Equal(t, 5, c.Len())
}
