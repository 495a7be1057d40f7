package board

import "github.com/minemind-go/minemind/boardview"

var _ boardview.View = (*Board)(nil)

// Board is a concrete boardview.View: a grid of cells with first-click
// safe mine placement, flood-fill reveal, flag toggling, and chording.
// Grounded on core/board.py.
type Board struct {
	width, height, numMines int
	rng                     *RNG

	state [][]boardview.CellState // [y][x]
	mines map[boardview.Coord]struct{}
	counts map[boardview.Coord]int // nil until first click

	firstClickDone bool
	gameState      boardview.GameState
	revealedCount  int
	flagCount      int
}

// NewBoard constructs an empty, unopened board. Mines are not placed
// until the first Open call, so the board can guarantee that call is
// safe.
func NewBoard(width, height, numMines int, seed int64) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if numMines < 0 || numMines >= width*height {
		return nil, ErrTooManyMines
	}

	state := make([][]boardview.CellState, height)
	for y := range state {
		state[y] = make([]boardview.CellState, width)
	}

	return &Board{
		width:     width,
		height:    height,
		numMines:  numMines,
		rng:       NewRNG(seed),
		state:     state,
		gameState: boardview.Playing,
	}, nil
}

func (b *Board) Width() int      { return b.width }
func (b *Board) Height() int     { return b.height }
func (b *Board) NumMines() int   { return b.numMines }
func (b *Board) FlagCount() int  { return b.flagCount }
func (b *Board) GameState() boardview.GameState { return b.gameState }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// GetState returns Unknown for any out-of-bounds coordinate.
func (b *Board) GetState(x, y int) boardview.CellState {
	if !b.inBounds(x, y) {
		return boardview.Unknown
	}
	return b.state[y][x]
}

// GetCount returns (0, false) if mines have not been placed yet or the
// coordinate is out of bounds or unrevealed.
func (b *Board) GetCount(x, y int) (int, bool) {
	if b.counts == nil || !b.inBounds(x, y) || b.state[y][x] != boardview.Revealed {
		return 0, false
	}
	c, ok := b.counts[boardview.Coord{X: x, Y: y}]
	return c, ok
}

// Open reveals (x, y). The first Open call of a board's lifetime places
// mines, excluding (x, y) and its neighbors when possible, guaranteeing
// the very first click is never a mine.
func (b *Board) Open(x, y int) (bool, []boardview.Coord) {
	if !b.inBounds(x, y) {
		return false, nil
	}
	if b.state[y][x] != boardview.Unknown {
		return true, nil
	}

	if !b.firstClickDone {
		b.placeMines(x, y)
		b.firstClickDone = true
	}

	if _, isMine := b.mines[boardview.Coord{X: x, Y: y}]; isMine {
		b.state[y][x] = boardview.Revealed
		b.gameState = boardview.Lost
		return false, []boardview.Coord{{X: x, Y: y}}
	}

	revealed := b.floodFill(x, y)
	b.revealedCount += len(revealed)
	if b.revealedCount == b.width*b.height-b.numMines {
		b.gameState = boardview.Won
	}
	return true, revealed
}

// Flag toggles the flag state of (x, y); revealed cells cannot be
// flagged. Returns whether the state actually changed.
func (b *Board) Flag(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	switch b.state[y][x] {
	case boardview.Unknown:
		b.state[y][x] = boardview.Flagged
		b.flagCount++
		return true
	case boardview.Flagged:
		b.state[y][x] = boardview.Unknown
		b.flagCount--
		return true
	default:
		return false
	}
}

// Chord opens every unflagged UNKNOWN neighbor of a revealed numbered
// cell, but only when the cell's flagged-neighbor count already matches
// its count. Not part of boardview.View (the solver never calls it) —
// a convenience for a human or UI driving the board directly.
func (b *Board) Chord(x, y int) (bool, []boardview.Coord) {
	if !b.inBounds(x, y) || b.state[y][x] != boardview.Revealed {
		return true, nil
	}
	count, ok := b.counts[boardview.Coord{X: x, Y: y}]
	if !ok || count == 0 {
		return true, nil
	}

	neighbors := boardview.Neighbors8(x, y, b.width, b.height)
	flagged := 0
	for _, n := range neighbors {
		if b.state[n.Y][n.X] == boardview.Flagged {
			flagged++
		}
	}
	if flagged != count {
		return true, nil
	}

	var allRevealed []boardview.Coord
	for _, n := range neighbors {
		if b.state[n.Y][n.X] == boardview.Unknown {
			success, revealed := b.Open(n.X, n.Y)
			allRevealed = append(allRevealed, revealed...)
			if !success {
				return false, allRevealed
			}
		}
	}
	return true, allRevealed
}

func (b *Board) placeMines(firstX, firstY int) {
	gen := newGenerator(b.width, b.height, b.numMines, b.rng)
	b.mines = gen.placeMines(firstX, firstY)
	b.counts = gen.computeCounts(b.mines)
}

// floodFill reveals (x, y) and, if its count is 0, breadth-first expands
// through every adjacent zero-count region's perimeter using a plain
// slice-backed FIFO queue rather than container/list.
func (b *Board) floodFill(x, y int) []boardview.Coord {
	type queued struct{ x, y int }
	queue := []queued{{x, y}}
	visited := map[boardview.Coord]struct{}{{X: x, Y: y}: {}}
	var revealed []boardview.Coord

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		b.state[cur.y][cur.x] = boardview.Revealed
		revealed = append(revealed, boardview.Coord{X: cur.x, Y: cur.y})

		if b.counts[boardview.Coord{X: cur.x, Y: cur.y}] == 0 {
			for _, n := range boardview.Neighbors8(cur.x, cur.y, b.width, b.height) {
				if _, seen := visited[n]; seen {
					continue
				}
				if b.state[n.Y][n.X] == boardview.Unknown {
					visited[n] = struct{}{}
					queue = append(queue, queued{n.X, n.Y})
				}
			}
		}
	}
	return revealed
}

// IsMine reports whether (x, y) holds a mine. Returns false if mines
// have not been placed yet.
func (b *Board) IsMine(x, y int) bool {
	if b.mines == nil {
		return false
	}
	_, ok := b.mines[boardview.Coord{X: x, Y: y}]
	return ok
}
