package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAnyNode() Node {
	return &AnyNode{base: newBase(KindAny, nil, nil, nil, nil, nil)}
}

func TestCacheGetMissThenInsertThenHit(t *testing.T) {
	c := NewCache()

	_, ok := c.get("user", "fp1")
	assert.False(t, ok)

	n := testAnyNode()
	got := c.insert("user", "fp1", n)
	assert.Same(t, n, got)

	hit, ok := c.get("user", "fp1")
	assert.True(t, ok)
	assert.Same(t, n, hit)

	info := c.Info()
	assert.Equal(t, int64(1), info.Hits)
	assert.Equal(t, int64(1), info.Misses)
	assert.Equal(t, 1, info.CurrSize)
}

func TestCacheKeyedByFingerprint(t *testing.T) {
	c := NewCache()
	n1 := c.insert("user", "fp1", testAnyNode())
	n2 := c.insert("user", "fp2", testAnyNode())

	assert.NotSame(t, n1, n2)
	got1, _ := c.get("user", "fp1")
	got2, _ := c.get("user", "fp2")
	assert.Same(t, n1, got1)
	assert.Same(t, n2, got2)
}

func TestCacheInsertFirstWriterWins(t *testing.T) {
	c := NewCache()
	first := c.insert("user", "fp1", testAnyNode())
	second := c.insert("user", "fp1", testAnyNode())
	assert.Same(t, first, second)
}

func TestCacheClearResetsCountersAndEntries(t *testing.T) {
	c := NewCache()
	c.insert("user", "fp1", testAnyNode())
	c.get("user", "fp1")
	c.get("missing", "fp1")

	c.Clear()

	info := c.Info()
	assert.Equal(t, int64(0), info.Hits)
	assert.Equal(t, int64(0), info.Misses)
	assert.Equal(t, 0, info.CurrSize)

	_, ok := c.get("user", "fp1")
	assert.False(t, ok)
}

func TestCacheInfoString(t *testing.T) {
	info := CacheInfo{Hits: 1000, Misses: 2, CurrSize: 3}
	assert.Contains(t, info.String(), "1,000")
}
