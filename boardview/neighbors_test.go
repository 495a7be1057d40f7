package boardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors8Corner(t *testing.T) {
	got := Neighbors8(0, 0, 9, 9)
	require.Len(t, got, 3)
	assert.ElementsMatch(t, []Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, got)
}

func TestNeighbors8Edge(t *testing.T) {
	got := Neighbors8(4, 0, 9, 9)
	require.Len(t, got, 5)
}

func TestNeighbors8Interior(t *testing.T) {
	got := Neighbors8(4, 4, 9, 9)
	require.Len(t, got, 8)
}

func TestNeighbors8SingleCellBoard(t *testing.T) {
	got := Neighbors8(0, 0, 1, 1)
	assert.Empty(t, got)
}
