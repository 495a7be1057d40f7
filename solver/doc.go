// Package solver orchestrates frontier construction, deterministic
// rules, and exact enumeration into the driver-facing operations:
// GetHint, Step, ComputeProbabilities, AutoSolve, and SelectBestGuess.
// The enumerator's backtracking is expressed as an explicit enumerator
// struct mutated across recursive calls rather than a closure over
// captured mutable slices.
package solver
