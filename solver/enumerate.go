package solver

import "github.com/minemind-go/minemind/frontier"

// enumerator performs bounded exact backtracking over one component's
// variables. Expressed as an explicit struct mutated across recursive
// calls rather than a closure over captured slices.
type enumerator struct {
	constraints []frontier.Constraint
	variables   []int       // local frontier indices, ascending
	varPos      map[int]int // local frontier index -> position in variables

	assignment     []int // 0/1 per position, valid for positions < current depth
	mineCounts     []int // per position, number of solutions assigning it 1
	totalSolutions int
}

func newEnumerator(comp frontier.Component) *enumerator {
	varPos := make(map[int]int, len(comp.Variables))
	for pos, idx := range comp.Variables {
		varPos[idx] = pos
	}
	return &enumerator{
		constraints: comp.Constraints,
		variables:   comp.Variables,
		varPos:      varPos,
		assignment:  make([]int, len(comp.Variables)),
		mineCounts:  make([]int, len(comp.Variables)),
	}
}

// run performs the full DFS and returns, per local frontier variable
// index, its mine probability. infeasible reports whether the
// component admitted zero legal assignments, in which case every
// variable is reported at the conservative fallback of 0.5.
func (e *enumerator) run() (probabilities map[int]float64, infeasible bool) {
	e.search(0)

	probabilities = make(map[int]float64, len(e.variables))
	if e.totalSolutions == 0 {
		for _, idx := range e.variables {
			probabilities[idx] = 0.5
		}
		return probabilities, true
	}
	for pos, idx := range e.variables {
		probabilities[idx] = float64(e.mineCounts[pos]) / float64(e.totalSolutions)
	}
	return probabilities, false
}

// search tries value 0 then value 1 at pos, pruning via feasible after
// each write, and at a full assignment checks every constraint's exact
// sum.
func (e *enumerator) search(pos int) {
	if pos == len(e.variables) {
		if e.satisfiesAll() {
			e.totalSolutions++
			for i, v := range e.assignment {
				if v == 1 {
					e.mineCounts[i]++
				}
			}
		}
		return
	}

	for _, v := range [2]int{0, 1} {
		e.assignment[pos] = v
		if e.feasible(pos) {
			e.search(pos + 1)
		}
	}
}

// feasible checks every constraint whose scope includes the variable at
// pos: split its scope into assigned (position <= pos) and unassigned
// bits; prune if the assigned sum already exceeds remaining, or if even
// assigning every unassigned bit to 1 could not reach remaining.
func (e *enumerator) feasible(pos int) bool {
	for _, c := range e.constraints {
		if !c.Scope.Test(e.variables[pos]) {
			continue
		}
		assignedSum, unassigned := 0, 0
		for _, idx := range c.Scope.Bits() {
			p := e.varPos[idx]
			if p <= pos {
				assignedSum += e.assignment[p]
			} else {
				unassigned++
			}
		}
		if assignedSum > c.Remaining || assignedSum+unassigned < c.Remaining {
			return false
		}
	}
	return true
}

// satisfiesAll reports whether every constraint's sum under the current
// (full) assignment equals its remaining exactly.
func (e *enumerator) satisfiesAll() bool {
	for _, c := range e.constraints {
		sum := 0
		for _, idx := range c.Scope.Bits() {
			sum += e.assignment[e.varPos[idx]]
		}
		if sum != c.Remaining {
			return false
		}
	}
	return true
}
