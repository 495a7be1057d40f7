package board

import (
	"testing"

	"github.com/minemind-go/minemind/boardview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsInvalidDimensions(t *testing.T) {
	_, err := NewBoard(0, 9, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewBoard(9, 9, 81, 1)
	assert.ErrorIs(t, err, ErrTooManyMines)

	_, err = NewBoard(9, 9, -1, 1)
	assert.ErrorIs(t, err, ErrTooManyMines)
}

func TestFirstClickIsAlwaysSafe(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b, err := NewBoard(9, 9, 10, seed)
		require.NoError(t, err)
		success, revealed := b.Open(4, 4)
		assert.True(t, success)
		assert.NotEmpty(t, revealed)
		assert.Equal(t, boardview.Playing, b.GameState())
	}
}

func TestGetStateOutOfBoundsIsUnknown(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, boardview.Unknown, b.GetState(-1, 0))
	assert.Equal(t, boardview.Unknown, b.GetState(100, 100))
}

func TestGetCountNoneUntilFirstClick(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 1)
	require.NoError(t, err)
	_, ok := b.GetCount(4, 4)
	assert.False(t, ok)

	b.Open(4, 4)
	_, ok = b.GetCount(4, 4)
	assert.True(t, ok)
}

func TestFlagTogglesAndTracksCount(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 1)
	require.NoError(t, err)

	changed := b.Flag(0, 0)
	assert.True(t, changed)
	assert.Equal(t, boardview.Flagged, b.GetState(0, 0))
	assert.Equal(t, 1, b.FlagCount())

	changed = b.Flag(0, 0)
	assert.True(t, changed)
	assert.Equal(t, boardview.Unknown, b.GetState(0, 0))
	assert.Equal(t, 0, b.FlagCount())
}

func TestFlagRevealedCellIsNoop(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 1)
	require.NoError(t, err)
	b.Open(4, 4)
	assert.False(t, b.Flag(4, 4))
}

func TestOpeningAMineLosesGame(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 7)
	require.NoError(t, err)
	b.Open(0, 0) // first click always safe, places mines elsewhere

	lost := false
	for y := 0; y < 9 && !lost; y++ {
		for x := 0; x < 9 && !lost; x++ {
			if b.IsMine(x, y) && b.GetState(x, y) == boardview.Unknown {
				success, _ := b.Open(x, y)
				require.False(t, success)
				lost = true
			}
		}
	}
	require.True(t, lost, "test fixture expects at least one mine reachable")
	assert.Equal(t, boardview.Lost, b.GameState())
}

func TestWinWhenEveryNonMineCellRevealed(t *testing.T) {
	b, err := NewBoard(2, 2, 1, 3)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if b.GetState(x, y) == boardview.Unknown && !b.IsMine(x, y) {
				b.Open(x, y)
			}
		}
	}
	assert.Equal(t, boardview.Won, b.GameState())
}

func TestOutOfBoundsOpenAndFlagAreNoops(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 1)
	require.NoError(t, err)
	success, revealed := b.Open(-1, -1)
	assert.False(t, success)
	assert.Empty(t, revealed)
	assert.False(t, b.Flag(-1, -1))
}
