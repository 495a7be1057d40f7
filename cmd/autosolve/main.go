// Command autosolve demonstrates the full solver pipeline end to end:
// generate a board, drive it with Solver.AutoSolve, and print the
// resulting trace.
//
// Scenario: a 9x9 board with 10 mines (beginner difficulty), opened at
// its center and then handed entirely to the solver with guessing
// enabled. Expectation: the solver either wins, loses to an unavoidable
// guess, or reports it is stuck — never panics, never leaves the board
// mid-game.
package main

import (
	"fmt"
	"log"

	"github.com/minemind-go/minemind/board"
	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/solver"
)

func main() {
	const width, height, numMines = 9, 9, 10
	const seed = 42

	b, err := board.NewBoard(width, height, numMines, seed)
	if err != nil {
		log.Fatalf("autosolve: failed to build board: %v", err)
	}

	// The first click is always safe; open the center to start the game.
	b.Open(width/2, height/2)

	s, err := solver.New(b, solver.DefaultConfig())
	if err != nil {
		log.Fatalf("autosolve: failed to build solver: %v", err)
	}

	steps, trace := s.AutoSolve(true, 500)

	for _, entry := range trace {
		fmt.Printf("[step %3d] %-14s %s\n", entry.Step, entry.Kind, entry.Message)
	}

	fmt.Printf("\nfinished after %d steps, game state: %s\n", steps, b.GameState())
	if s.LastInconsistency != nil {
		fmt.Printf("inconsistency observed: %s\n", s.LastInconsistency.Message)
	}

	switch b.GameState() {
	case boardview.Won:
		fmt.Println("the board was fully solved.")
	case boardview.Lost:
		fmt.Println("the solver hit a mine it could not have avoided without guessing.")
	default:
		fmt.Println("the solver ran out of certain moves and stopped.")
	}
}
