// Package dsu implements a disjoint-set union (union-find) over the
// small, dense integer domain 0..N-1, with union-by-rank and path
// compression. It is a standalone, reusable type rather than a closure
// inlined at its one call site, since more than one caller (the
// frontier's component decomposer, and any future consumer) wants the
// same primitive over array-indexed elements rather than string-keyed
// vertex IDs.
package dsu
