package rules

import (
	"testing"

	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/frontier"
	"github.com/minemind-go/minemind/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrontierWithUnknowns(coords ...boardview.Coord) *frontier.Frontier {
	f := &frontier.Frontier{UnknownIndex: make(map[boardview.Coord]int)}
	for _, c := range coords {
		f.UnknownIndex[c] = len(f.Unknowns)
		f.Unknowns = append(f.Unknowns, c)
	}
	return f
}

func TestApplySinglesAllSafeWhenRemainingZero(t *testing.T) {
	cellA := boardview.Coord{X: 4, Y: 5}
	f := newFrontierWithUnknowns(cellA)
	c := frontier.Constraint{Origin: boardview.Coord{X: 5, Y: 5}, Scope: mask.FromBits(0), Remaining: 0}

	moves := ApplySingles(f, []frontier.Constraint{c})
	require.Len(t, moves, 1)
	assert.False(t, moves[0].IsMine)
	_, ok := moves[0].Cells[cellA]
	assert.True(t, ok)
}

func TestApplySinglesAllMineWhenRemainingEqualsPopcount(t *testing.T) {
	cellA := boardview.Coord{X: 4, Y: 5}
	f := newFrontierWithUnknowns(cellA)
	c := frontier.Constraint{Origin: boardview.Coord{X: 5, Y: 5}, Scope: mask.FromBits(0), Remaining: 1}

	moves := ApplySingles(f, []frontier.Constraint{c})
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsMine)
}

func TestApplySinglesNoMoveWhenAmbiguous(t *testing.T) {
	f := newFrontierWithUnknowns(boardview.Coord{X: 0, Y: 0}, boardview.Coord{X: 1, Y: 0})
	c := frontier.Constraint{Scope: mask.FromBits(0, 1), Remaining: 1}
	assert.Empty(t, ApplySingles(f, []frontier.Constraint{c}))
}

// TestApplySubset121PatternSafe covers a 1-2-1 pattern where the subset
// rule concludes the difference is safe.
func TestApplySubset121PatternSafe(t *testing.T) {
	cellShared1 := boardview.Coord{X: 2, Y: 4}
	cellShared2 := boardview.Coord{X: 3, Y: 4}
	cellDiff1 := boardview.Coord{X: 4, Y: 4}
	cellDiff2 := boardview.Coord{X: 5, Y: 4}

	f := newFrontierWithUnknowns(cellShared1, cellShared2, cellDiff1, cellDiff2)

	a := frontier.Constraint{Origin: boardview.Coord{X: 3, Y: 3}, Scope: mask.FromBits(0, 1), Remaining: 1}
	b := frontier.Constraint{Origin: boardview.Coord{X: 4, Y: 3}, Scope: mask.FromBits(0, 1, 2, 3), Remaining: 1}

	moves := ApplySubset(f, []frontier.Constraint{a, b})
	require.Len(t, moves, 1)
	assert.False(t, moves[0].IsMine)
	_, ok1 := moves[0].Cells[cellDiff1]
	_, ok2 := moves[0].Cells[cellDiff2]
	assert.True(t, ok1)
	assert.True(t, ok2)
}

func TestApplySubsetAllMineWhenDifferenceExact(t *testing.T) {
	f := newFrontierWithUnknowns(
		boardview.Coord{X: 0, Y: 0}, boardview.Coord{X: 1, Y: 0}, boardview.Coord{X: 2, Y: 0},
	)
	sub := frontier.Constraint{Scope: mask.FromBits(0), Remaining: 0}
	sup := frontier.Constraint{Scope: mask.FromBits(0, 1, 2), Remaining: 2}

	moves := ApplySubset(f, []frontier.Constraint{sub, sup})
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsMine)
	assert.Len(t, moves[0].Cells, 2)
}

func TestFindCertainMovesDeduplicatesAndOrdersSinglesFirst(t *testing.T) {
	cellA := boardview.Coord{X: 0, Y: 0}
	f := newFrontierWithUnknowns(cellA)

	c1 := frontier.Constraint{Origin: boardview.Coord{X: 1, Y: 0}, Scope: mask.FromBits(0), Remaining: 0}
	c2 := frontier.Constraint{Origin: boardview.Coord{X: 1, Y: 1}, Scope: mask.FromBits(0), Remaining: 0}

	moves := FindCertainMoves(f, []frontier.Constraint{c1, c2})
	require.Len(t, moves, 1, "identical conclusions from two constraints must dedupe")
	assert.Equal(t, Single, moves[0].Rule)
}
