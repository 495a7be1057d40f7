// Package pqueue implements a generic min-heap priority queue over
// container/heap: the familiar nodePQ / nodeItem shape (Len/Less/Swap/
// Push/Pop over a boxed item plus an ordering key), generalized from a
// fixed (vertex string, distance int64) pair to arbitrary (item T,
// priority Priority) pairs — the guess selector needs to break ties on
// a 4-tuple (probability, negated centrality, x, y) that a single-float
// distance never had to express.
package pqueue
