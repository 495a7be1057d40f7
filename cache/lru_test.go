package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	_, err := New[string, int](0)
	assert.ErrorIs(t, err, ErrNonPositiveCapacity)

	_, err = New[string, int](-1)
	assert.ErrorIs(t, err, ErrNonPositiveCapacity)
}

func TestPutThenGetIsIdempotentAndCapacityStable(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, c.capacity)
}

func TestLRUEvictsLeastRecentlyUsedOnOverflow(t *testing.T) {
	c, err := New[string, int](3)
	require.NoError(t, err)

	c.Put("k1", 1)
	c.Put("k2", 2)
	c.Put("k3", 3)
	c.Put("k4", 4) // no intervening Get: k1 is oldest, must be evicted

	_, ok := c.Get("k1")
	assert.False(t, ok, "k1 should have been evicted")

	for _, k := range []string{"k2", "k3", "k4"} {
		_, ok := c.Get(k)
		assert.True(t, ok, "%s should remain", k)
	}
	assert.Equal(t, 3, c.Size())
}

func TestGetRefreshesRecency(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")    // a is now most-recently-used
	c.Put("c", 3) // evicts b, not a

	_, ok := c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestInvalidateAndClear(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)
	c.Put("a", 1)
	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Size())
}
