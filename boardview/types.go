package boardview

// Coord is a single cell coordinate. X is the column, Y is the row;
// 0 <= X < Width, 0 <= Y < Height.
type Coord struct {
	X, Y int
}

// CellState is the visibility state of a single cell as seen by the solver.
type CellState int

const (
	// Unknown cells are unrevealed and unflagged — the solver's variables.
	Unknown CellState = iota
	// Revealed cells carry a mine count and never hold a mine (alive board).
	Revealed
	// Flagged cells are treated as "mine, do not vary".
	Flagged
)

// String renders a CellState for diagnostics and test failure messages.
func (s CellState) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case Revealed:
		return "Revealed"
	case Flagged:
		return "Flagged"
	default:
		return "CellState(?)"
	}
}

// GameState is the outcome of the game as a whole.
type GameState int

const (
	// Playing means the game is still alive; REVEALED cells carry no mine.
	Playing GameState = iota
	// Won means every non-mine cell has been revealed.
	Won
	// Lost means a mine was opened.
	Lost
)

// String renders a GameState for diagnostics and test failure messages.
func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "GameState(?)"
	}
}

// View is the read-only board the solver consumes. Every method must be
// safe to call repeatedly without side effects except Open and Flag,
// which are the only two mutators and are only ever invoked by a caller
// applying a move the solver suggested — never by the solver's own
// inference or enumeration paths.
type View interface {
	// Width returns the board's column count.
	Width() int
	// Height returns the board's row count.
	Height() int
	// NumMines returns the total number of mines on the board.
	NumMines() int
	// FlagCount returns the number of cells currently flagged.
	FlagCount() int
	// GetState returns the visibility state of (x, y). Out-of-bounds
	// coordinates return Unknown.
	GetState(x, y int) CellState
	// GetCount returns the adjacent-mine count of a revealed cell and
	// true, or (0, false) if mines have not been placed yet (the first
	// click has not occurred) or the cell is out of bounds.
	GetCount(x, y int) (int, bool)
	// Open reveals (x, y). success is false iff a mine was uncovered;
	// revealed lists every cell newly revealed by this call (more than
	// one when flood fill cascades through zero-count cells).
	Open(x, y int) (success bool, revealed []Coord)
	// Flag toggles the flag state of (x, y); returns whether the flag
	// state actually changed.
	Flag(x, y int) bool
	// GameState reports whether the game is still being played, won, or
	// lost.
	GameState() GameState
}
