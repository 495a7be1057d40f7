package rules

import (
	"fmt"

	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/frontier"
)

// ApplySingles applies the SINGLE rule to each constraint independently:
// Remaining == 0 marks every cell in Scope safe; Remaining == popcount(Scope)
// marks every cell in Scope mined. Returns moves in constraint-discovery
// order.
func ApplySingles(f *frontier.Frontier, constraints []frontier.Constraint) []Move {
	var moves []Move
	for _, c := range constraints {
		popcount := c.Scope.Popcount()
		switch {
		case c.Remaining == 0:
			moves = append(moves, Move{
				Cells:       f.MaskToCells(c.Scope),
				IsMine:      false,
				Rule:        Single,
				Explanation: fmt.Sprintf("SINGLE at %v: remaining=0 -> all neighbors safe", c.Origin),
			})
		case c.Remaining == popcount:
			moves = append(moves, Move{
				Cells:       f.MaskToCells(c.Scope),
				IsMine:      true,
				Rule:        Single,
				Explanation: fmt.Sprintf("SINGLE at %v: remaining=%d = |scope| -> all neighbors mines", c.Origin, c.Remaining),
			})
		}
	}
	return moves
}

// ApplySubset applies the SUBSET rule to every unordered pair of
// distinct constraints whose scopes are related by strict containment.
// For a contained pair (sub ⊆ sup, sub != sup), let diff = sup \ sub:
//   - sup.Remaining == sub.Remaining implies diff is entirely safe.
//   - sup.Remaining - sub.Remaining == popcount(diff) implies diff is
//     entirely mined.
func ApplySubset(f *frontier.Frontier, constraints []frontier.Constraint) []Move {
	var moves []Move
	for i := 0; i < len(constraints); i++ {
		for j := i + 1; j < len(constraints); j++ {
			a, b := constraints[i], constraints[j]

			var sub, sup frontier.Constraint
			switch {
			case a.Scope.IsSubsetOf(b.Scope) && !a.Scope.Equal(b.Scope):
				sub, sup = a, b
			case b.Scope.IsSubsetOf(a.Scope) && !b.Scope.Equal(a.Scope):
				sub, sup = b, a
			default:
				continue
			}

			diff := sup.Scope.AndNot(sub.Scope)
			if diff.IsZero() {
				continue
			}
			diffPopcount := diff.Popcount()

			switch {
			case sup.Remaining == sub.Remaining:
				moves = append(moves, Move{
					Cells:  f.MaskToCells(diff),
					IsMine: false,
					Rule:   Subset,
					Explanation: fmt.Sprintf("SUBSET: N%v ⊆ N%v, remaining equal -> difference safe",
						sub.Origin, sup.Origin),
				})
			case sup.Remaining-sub.Remaining == diffPopcount:
				moves = append(moves, Move{
					Cells:  f.MaskToCells(diff),
					IsMine: true,
					Rule:   Subset,
					Explanation: fmt.Sprintf("SUBSET: N%v ⊆ N%v, %d-%d=%d=|diff| -> difference mines",
						sub.Origin, sup.Origin, sup.Remaining, sub.Remaining, diffPopcount),
				})
			}
		}
	}
	return moves
}

// moveKey identifies a move by its cell set and polarity for
// deduplication; two moves with the same key are considered the same
// conclusion regardless of which rule found it first.
type moveKey struct {
	cellsKey string
	isMine   bool
}

func keyOf(m Move) moveKey {
	// Canonicalize the cell set into a sorted, delimiter-joined string so
	// equal sets produce equal keys regardless of map iteration order.
	cells := make([]boardview.Coord, 0, len(m.Cells))
	for c := range m.Cells {
		cells = append(cells, c)
	}
	// Insertion sort is fine: move cell sets are tiny (bounded by a
	// constraint's popcount, at most 8 in practice).
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && less(cells[j], cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
	s := ""
	for _, c := range cells {
		s += fmt.Sprintf("%d,%d;", c.X, c.Y)
	}
	return moveKey{cellsKey: s, isMine: m.IsMine}
}

func less(a, b boardview.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// FindCertainMoves applies SINGLE then SUBSET to constraints and
// deduplicates by (cell set, is_mine), keeping the first occurrence —
// all SINGLE moves precede all SUBSET moves.
func FindCertainMoves(f *frontier.Frontier, constraints []frontier.Constraint) []Move {
	all := append(ApplySingles(f, constraints), ApplySubset(f, constraints)...)

	seen := make(map[moveKey]struct{}, len(all))
	unique := make([]Move, 0, len(all))
	for _, m := range all {
		k := keyOf(m)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}
