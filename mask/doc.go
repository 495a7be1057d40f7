// Package mask provides Set, a bitmask over local frontier-variable
// indices. Local indices number every UNKNOWN cell on the board, so a
// native uint64 covers boards with at most 64 unknown cells; larger ones
// must stay correct too: Set transparently upgrades to a
// segmented representation backed by github.com/bits-and-blooms/bitset
// once an index >= 64 is ever set, so callers never have to reason
// about which representation is active.
package mask
