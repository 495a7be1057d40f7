package rules

import "github.com/minemind-go/minemind/boardview"

// RuleKind names which rule produced a Move.
type RuleKind string

const (
	// Single moves come from one constraint with Remaining == 0 or
	// Remaining == popcount(Scope).
	Single RuleKind = "SINGLE"
	// Subset moves come from a strict-subset pair of constraints.
	Subset RuleKind = "SUBSET"
	// Exact moves come from full enumeration of a small component
	// (emitted by package solver, not by this package).
	Exact RuleKind = "EXACT"
)

// Move is a certain move: every cell in Cells is safe (IsMine == false)
// or mined (IsMine == true), with Rule naming the rule that found it and
// Explanation a short human-readable justification.
type Move struct {
	Cells       map[boardview.Coord]struct{}
	IsMine      bool
	Rule        RuleKind
	Explanation string
}
