package dsu

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNegativeSize(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, ErrNegativeSize)
}

func TestUnionFindConnectivity(t *testing.T) {
	d, err := New(6)
	require.NoError(t, err)
	require.True(t, d.Union(0, 1))
	require.True(t, d.Union(1, 2))
	require.True(t, d.Union(3, 4))
	require.False(t, d.Union(0, 2), "already connected, Union should report no-op")

	assert.True(t, d.Connected(0, 2))
	assert.True(t, d.Connected(0, 1))
	assert.False(t, d.Connected(0, 3))
	assert.False(t, d.Connected(3, 5))
}

func TestComponentsPartitionElements(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)
	d.Union(0, 1)
	d.Union(1, 2)

	components := d.Components()

	var sizes []int
	total := 0
	for _, members := range components {
		sizes = append(sizes, len(members))
		total += len(members)
	}
	assert.Equal(t, 5, total, "every element must appear in exactly one component")

	sort.Ints(sizes)
	assert.Equal(t, []int{1, 1, 3}, sizes)
}

func TestFindCompressesPath(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(2, 3)

	root := d.Find(3)
	for i := 0; i < 4; i++ {
		assert.Equal(t, root, d.Find(i))
	}
}

func TestNewZeroIsUsable(t *testing.T) {
	d, err := New(0)
	require.NoError(t, err)
	assert.Empty(t, d.Components())
}
