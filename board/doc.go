// Package board implements the concrete Minesweeper board mechanics
// behind boardview.View: first-click-safe mine placement, flood-fill
// reveal, chording, and flag toggling.
//
// This package exists because a complete, testable, runnable
// repository needs a real implementation backing that interface, even
// though the solver only ever consumes it through boardview.View: a
// dense [][]CellState grid indexed by (y, x), integer mine counts
// computed once at placement time, and a seeded *rand.Rand instead of a
// bare global RNG.
package board
