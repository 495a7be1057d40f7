// Package cache implements LRU, a bounded-capacity least-recently-used
// cache mapping component signatures to their enumeration results.
//
// Grounded on core/lru.py's OrderedDict-based design; since Go has no
// built-in ordered map, this reimplements the same recency semantics
// with a container/list.List (the doubly linked list OrderedDict itself
// wraps) plus a map from key to list element, the idiomatic Go shape for
// an LRU and the nearest direct translation of the original's data
// structure rather than an unrelated reinvention.
package cache
