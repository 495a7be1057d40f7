package frontier

import (
	"sort"

	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/mask"
)

// Frontier is the variable set and constraint set extracted from one
// boardview.View snapshot. It is built fresh on every solver call and
// never persisted across board mutations.
type Frontier struct {
	// Unknowns lists every UNKNOWN cell in lexicographic (y, x) order;
	// its position is the cell's dense local index.
	Unknowns []boardview.Coord
	// UnknownIndex is the reverse lookup, coordinate -> local index.
	UnknownIndex map[boardview.Coord]int
	// Constraints holds one entry per revealed numbered cell with >=1
	// UNKNOWN neighbor.
	Constraints []Constraint
}

// Build scans view in row-major order, collects UNKNOWN cells into a
// dense local index space, then emits one Constraint per REVEALED
// numbered cell adjacent to at least one UNKNOWN neighbor. Revealed
// cells with count 0, or with no UNKNOWN neighbor, contribute nothing.
func Build(view boardview.View) *Frontier {
	width, height := view.Width(), view.Height()

	f := &Frontier{
		UnknownIndex: make(map[boardview.Coord]int),
	}

	// Pass 1: collect UNKNOWN cells in row-major (y, x) order, which is
	// already lexicographic (y, x) order.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if view.GetState(x, y) == boardview.Unknown {
				c := boardview.Coord{X: x, Y: y}
				f.UnknownIndex[c] = len(f.Unknowns)
				f.Unknowns = append(f.Unknowns, c)
			}
		}
	}

	// Pass 2: emit constraints for revealed numbered cells.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if view.GetState(x, y) != boardview.Revealed {
				continue
			}
			count, ok := view.GetCount(x, y)
			if !ok || count <= 0 {
				continue
			}

			var scope mask.Set
			flagged := 0
			for _, n := range boardview.Neighbors8(x, y, width, height) {
				switch view.GetState(n.X, n.Y) {
				case boardview.Unknown:
					scope.SetBit(f.UnknownIndex[n])
				case boardview.Flagged:
					flagged++
				}
			}
			if scope.IsZero() {
				continue
			}

			f.Constraints = append(f.Constraints, Constraint{
				Origin:    boardview.Coord{X: x, Y: y},
				Scope:     scope,
				Remaining: count - flagged,
			})
		}
	}

	return f
}

// MaskToCells converts a bitmask over local indices to the set of
// coordinates it denotes.
func (f *Frontier) MaskToCells(m mask.Set) map[boardview.Coord]struct{} {
	cells := make(map[boardview.Coord]struct{}, m.Popcount())
	for _, idx := range m.Bits() {
		if idx < len(f.Unknowns) {
			cells[f.Unknowns[idx]] = struct{}{}
		}
	}
	return cells
}

// CellsToMask converts a set of coordinates to a bitmask over local
// indices. Coordinates not present in the frontier (already revealed,
// flagged, or off-board) are silently dropped.
func (f *Frontier) CellsToMask(cells map[boardview.Coord]struct{}) mask.Set {
	var m mask.Set
	for cell := range cells {
		if idx, ok := f.UnknownIndex[cell]; ok {
			m.SetBit(idx)
		}
	}
	return m
}

// InconsistentConstraints returns every constraint that violates
// 0 <= Remaining <= popcount(Scope), in discovery order. A non-empty
// result means the observed board cannot arise from any legal mine
// configuration.
func (f *Frontier) InconsistentConstraints() []Constraint {
	var bad []Constraint
	for _, c := range f.Constraints {
		if !c.Consistent() {
			bad = append(bad, c)
		}
	}
	return bad
}

// sortedInts is a tiny helper kept local to this package: components
// are keyed by DSU root, which is not itself meaningful, so callers that
// want deterministic output sort by each component's minimum constraint
// index instead.
func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}
