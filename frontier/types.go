package frontier

import (
	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/mask"
)

// Constraint is a linear equation "sum of variables in Scope == Remaining"
// derived from one revealed numbered cell.
type Constraint struct {
	// Origin is the revealed cell that produced this constraint;
	// diagnostic only, never consulted for correctness.
	Origin boardview.Coord
	// Scope is the bitmask of local unknown-variable indices this
	// constraint refers to.
	Scope mask.Set
	// Remaining is the cell's count minus its flagged-neighbor count.
	// May be negative or exceed popcount(Scope) only on an inconsistent
	// board; Consistent reports that case.
	Remaining int
}

// Consistent reports whether 0 <= Remaining <= popcount(Scope), the
// invariant every constraint derived from a legal board must satisfy.
func (c Constraint) Consistent() bool {
	return c.Remaining >= 0 && c.Remaining <= c.Scope.Popcount()
}

// Component is a maximal set of constraints transitively connected by
// shared variables, plus the ascending-sorted local indices of every
// variable the component touches.
type Component struct {
	Constraints []Constraint
	Variables   []int
}
