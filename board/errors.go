package board

import "errors"

// Sentinel errors for board construction.
var (
	// ErrInvalidDimensions indicates width or height was not positive.
	ErrInvalidDimensions = errors.New("board: width and height must be positive")
	// ErrTooManyMines indicates numMines did not satisfy
	// 0 <= numMines < width*height.
	ErrTooManyMines = errors.New("board: num_mines must be in [0, width*height)")
)
