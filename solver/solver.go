package solver

import (
	"fmt"
	"sort"

	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/cache"
	"github.com/minemind-go/minemind/frontier"
	"github.com/minemind-go/minemind/pqueue"
	"github.com/minemind-go/minemind/rules"
)

// Solver orchestrates frontier construction, deterministic rules, and
// bounded exact enumeration against one boardview.View. Grounded on
// core/solver.py.
type Solver struct {
	board boardview.View
	cfg   Config
	cache *cache.LRU[frontier.Signature, map[int]float64]

	// LastInconsistency records the most recent inconsistent component —
	// one holding a constraint outside 0 <= Remaining <= popcount(Scope),
	// or one the enumerator found infeasible — or nil if none has been
	// observed yet.
	LastInconsistency *Inconsistency
}

// New constructs a Solver over board. Returns ErrNonPositiveCacheSize if
// cfg.CacheSize <= 0.
func New(board boardview.View, cfg Config) (*Solver, error) {
	if cfg.CacheSize <= 0 {
		return nil, ErrNonPositiveCacheSize
	}
	c, _ := cache.New[frontier.Signature, map[int]float64](cfg.CacheSize)
	return &Solver{board: board, cfg: cfg, cache: c}, nil
}

// GetHint returns the first certain move the solver can prove, checking
// each component's deterministic rules before falling back to bounded
// enumeration, or nil if no certain move exists anywhere on the board.
func (s *Solver) GetHint() *rules.Move {
	f := frontier.Build(s.board)
	if len(f.Constraints) == 0 {
		return nil
	}

	for _, comp := range f.Components() {
		if bad := inconsistentOf(comp); len(bad) > 0 {
			s.recordFrontierInconsistency(comp, bad)
			continue
		}

		if moves := rules.FindCertainMoves(f, comp.Constraints); len(moves) > 0 {
			return &moves[0]
		}

		if len(comp.Variables) > s.cfg.KMax {
			continue
		}

		probs, infeasible := s.enumerateComponent(comp)
		if infeasible {
			s.recordInconsistency(comp)
			continue
		}

		for _, idx := range comp.Variables {
			p := probs[idx]
			switch {
			case p <= epsilon:
				return &rules.Move{
					Cells:       map[boardview.Coord]struct{}{f.Unknowns[idx]: {}},
					IsMine:      false,
					Rule:        rules.Exact,
					Explanation: fmt.Sprintf("EXACT at %v: enumeration assigns mine-probability %.4f", f.Unknowns[idx], p),
				}
			case p >= 1-epsilon:
				return &rules.Move{
					Cells:       map[boardview.Coord]struct{}{f.Unknowns[idx]: {}},
					IsMine:      true,
					Rule:        rules.Exact,
					Explanation: fmt.Sprintf("EXACT at %v: enumeration assigns mine-probability %.4f", f.Unknowns[idx], p),
				}
			}
		}
	}
	return nil
}

// Step returns the first certain move without applying it; the caller
// is responsible for applying it to the board.
func (s *Solver) Step() *rules.Move {
	return s.GetHint()
}

// ComputeProbabilities returns the mine probability of every UNKNOWN
// cell the solver can estimate: exact enumerated values for cells in
// components at or below KMax, the global base rate for cells in
// oversized components, and the residual base rate for cells touched by
// no constraint at all. Cells for which the residual rate's denominator
// is non-positive are omitted.
func (s *Solver) ComputeProbabilities() map[boardview.Coord]float64 {
	f := frontier.Build(s.board)
	probabilities := make(map[boardview.Coord]float64, len(f.Unknowns))
	if len(f.Unknowns) == 0 {
		return probabilities
	}

	touched := make([]bool, len(f.Unknowns))

	if len(f.Constraints) > 0 {
		baseRate := float64(s.board.NumMines()) / float64(s.board.Width()*s.board.Height())

		for _, comp := range f.Components() {
			for _, idx := range comp.Variables {
				touched[idx] = true
			}

			if bad := inconsistentOf(comp); len(bad) > 0 {
				s.recordFrontierInconsistency(comp, bad)
				for _, idx := range comp.Variables {
					probabilities[f.Unknowns[idx]] = 0.5
				}
				continue
			}

			if len(comp.Variables) > s.cfg.KMax {
				for _, idx := range comp.Variables {
					probabilities[f.Unknowns[idx]] = baseRate
				}
				continue
			}

			probs, infeasible := s.enumerateComponent(comp)
			if infeasible {
				s.recordInconsistency(comp)
			}
			for _, idx := range comp.Variables {
				probabilities[f.Unknowns[idx]] = probs[idx]
			}
		}
	}

	remainingMines := s.board.NumMines() - s.board.FlagCount()
	remainingCells := len(f.Unknowns)
	if remainingCells > 0 {
		residual := float64(remainingMines) / float64(remainingCells)
		for idx, cell := range f.Unknowns {
			if !touched[idx] {
				probabilities[cell] = residual
			}
		}
	}

	return probabilities
}

// SelectBestGuess returns the UNKNOWN cell the solver judges safest to
// open next, or nil if no UNKNOWN cell remains. With no computable
// probabilities (the bootstrap case, before any cell has been opened)
// it returns the first UNKNOWN cell in row-major order.
func (s *Solver) SelectBestGuess() *boardview.Coord {
	f := frontier.Build(s.board)
	if len(f.Unknowns) == 0 {
		return nil
	}

	probabilities := s.ComputeProbabilities()
	if len(probabilities) == 0 {
		first := f.Unknowns[0]
		return &first
	}

	cx, cy := float64(s.board.Width())/2, float64(s.board.Height())/2
	pq := pqueue.New[boardview.Coord]()
	for _, cell := range f.Unknowns {
		p, ok := probabilities[cell]
		if !ok {
			continue
		}
		dx, dy := float64(cell.X)-cx, float64(cell.Y)-cy
		pq.Push(cell, pqueue.Priority{
			Probability:     p,
			DistanceSquared: dx*dx + dy*dy,
			X:               cell.X,
			Y:               cell.Y,
		})
	}

	best, ok := pq.Pop()
	if !ok {
		first := f.Unknowns[0]
		return &first
	}
	return &best
}

// AutoSolve repeatedly applies GetHint (and, if allowGuess, a guess from
// SelectBestGuess) until the game is decided, the solver is stuck, or
// limit steps have elapsed. Returns the number of steps taken and a
// structured trace of every action.
func (s *Solver) AutoSolve(allowGuess bool, limit int) (int, []LogEntry) {
	var log []LogEntry
	steps := 0

	for steps < limit && s.board.GameState() == boardview.Playing {
		if move := s.GetHint(); move != nil {
			entry, lost := s.applyMove(steps+1, *move)
			steps++
			log = append(log, entry)
			if lost {
				return steps, log
			}
			continue
		}

		if !allowGuess {
			log = append(log, LogEntry{
				Step: steps + 1, Kind: LogStuck,
				Message: "stuck: no certain move and guessing disabled",
			})
			return steps, log
		}

		guess := s.SelectBestGuess()
		if guess == nil {
			log = append(log, LogEntry{
				Step: steps + 1, Kind: LogStuck,
				Message: "stuck: no UNKNOWN cell remains",
			})
			return steps, log
		}

		p := s.ComputeProbabilities()[*guess]
		success, _ := s.board.Open(guess.X, guess.Y)
		steps++
		if !success {
			log = append(log, LogEntry{
				Step: steps, Kind: LogMineHit, Cells: []boardview.Coord{*guess}, Probability: p,
				Message: fmt.Sprintf("guessed %v (p=%.4f) and hit a mine", *guess, p),
			})
			return steps, log
		}
		log = append(log, LogEntry{
			Step: steps, Kind: LogGuess, Cells: []boardview.Coord{*guess}, Probability: p,
			Message: fmt.Sprintf("guessed %v (p=%.4f)", *guess, p),
		})
	}

	switch s.board.GameState() {
	case boardview.Won:
		log = append(log, LogEntry{Step: steps, Kind: LogWon, Message: "board solved"})
	case boardview.Lost:
		log = append(log, LogEntry{Step: steps, Kind: LogLost, Message: "game over"})
	default:
		log = append(log, LogEntry{Step: steps, Kind: LogLimitReached, Message: fmt.Sprintf("step limit %d reached", limit)})
	}
	return steps, log
}

// applyMove applies a certain move cell by cell, in a deterministic
// (y, x) order: flags mines that are still UNKNOWN, opens safe cells.
// Reports whether opening hit a mine.
func (s *Solver) applyMove(step int, move rules.Move) (LogEntry, bool) {
	cells := sortedCells(move.Cells)

	if move.IsMine {
		for _, c := range cells {
			if s.board.GetState(c.X, c.Y) == boardview.Unknown {
				s.board.Flag(c.X, c.Y)
			}
		}
		return LogEntry{Step: step, Kind: LogFlag, Cells: cells, Rule: move.Rule, Message: move.Explanation}, false
	}

	for _, c := range cells {
		success, _ := s.board.Open(c.X, c.Y)
		if !success {
			return LogEntry{
				Step: step, Kind: LogMineHit, Cells: cells, Rule: move.Rule,
				Message: fmt.Sprintf("%s, but opening %v hit a mine", move.Explanation, c),
			}, true
		}
	}
	return LogEntry{Step: step, Kind: LogOpen, Cells: cells, Rule: move.Rule, Message: move.Explanation}, false
}

// enumerateComponent consults the signature-keyed LRU cache before
// falling back to a fresh enumerator.run().
func (s *Solver) enumerateComponent(comp frontier.Component) (map[int]float64, bool) {
	sig := frontier.ComputeSignature(comp)
	if cached, ok := s.cache.Get(sig); ok {
		return cached, false
	}

	probs, infeasible := newEnumerator(comp).run()
	if !infeasible {
		s.cache.Put(sig, probs)
	}
	return probs, infeasible
}

// inconsistentOf returns the constraints in comp that violate
// 0 <= Remaining <= popcount(Scope) — a structural violation checked
// before the rules or the enumerator run; the enumerator alone would
// report such a component only as having zero solutions.
func inconsistentOf(comp frontier.Component) []frontier.Constraint {
	var bad []frontier.Constraint
	for _, c := range comp.Constraints {
		if !c.Consistent() {
			bad = append(bad, c)
		}
	}
	return bad
}

func (s *Solver) recordFrontierInconsistency(comp frontier.Component, bad []frontier.Constraint) {
	origins := make([]boardview.Coord, 0, len(bad))
	for _, c := range bad {
		origins = append(origins, c.Origin)
	}
	s.LastInconsistency = &Inconsistency{
		Origins: origins,
		Message: fmt.Sprintf("%v: constraint out of range at %v", frontier.ErrInconsistentConstraint, origins),
	}
}

func (s *Solver) recordInconsistency(comp frontier.Component) {
	origins := make([]boardview.Coord, 0, len(comp.Constraints))
	for _, c := range comp.Constraints {
		origins = append(origins, c.Origin)
	}
	s.LastInconsistency = &Inconsistency{
		Origins: origins,
		Message: fmt.Sprintf("%v: inconsistent component at %v", ErrInconsistentComponent, origins),
	}
}

// sortedCells canonicalizes a move's cell set into ascending (y, x)
// order, so AutoSolve's log and board mutations are reproducible
// regardless of map iteration order.
func sortedCells(cells map[boardview.Coord]struct{}) []boardview.Coord {
	out := make([]boardview.Coord, 0, len(cells))
	for c := range cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
