package solver

import (
	"github.com/minemind-go/minemind/boardview"
	"github.com/minemind-go/minemind/rules"
)

// Config holds the Solver's two tunable parameters.
type Config struct {
	// KMax is the largest component variable count the enumerator will
	// attempt exhaustively; larger components fall back to the global
	// base rate instead.
	KMax int
	// CacheSize is the capacity of the LRU cache of enumerated
	// probability maps, keyed by component signature.
	CacheSize int
}

// DefaultConfig returns KMax 20, CacheSize 100.
func DefaultConfig() Config {
	return Config{KMax: 20, CacheSize: 100}
}

// epsilon is the certainty threshold GetHint uses to promote an
// enumerated probability into a certain EXACT move.
const epsilon = 1e-3

// Inconsistency records a component whose constraints admit no legal
// mine configuration — reported, never panicked.
type Inconsistency struct {
	Origins []boardview.Coord
	Message string
}

// LogKind names the kind of event one AutoSolve LogEntry records.
type LogKind string

const (
	LogFlag         LogKind = "FLAG"
	LogOpen         LogKind = "OPEN"
	LogGuess        LogKind = "GUESS"
	LogMineHit      LogKind = "MINE_HIT"
	LogStuck        LogKind = "STUCK"
	LogLimitReached LogKind = "LIMIT_REACHED"
	LogWon          LogKind = "WON"
	LogLost         LogKind = "LOST"
)

// LogEntry is one structured step of an AutoSolve trace — returned as
// typed data rather than pre-formatted strings, so a caller renders it
// however it likes.
type LogEntry struct {
	Step        int
	Kind        LogKind
	Cells       []boardview.Coord
	Rule        rules.RuleKind
	Probability float64
	Message     string
}
