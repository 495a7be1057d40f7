// Package frontier extracts the solver's variable and constraint set
// from a boardview.View, decomposes it into independent components via
// dsu, and computes each component's canonical cache signature.
//
// A row-major scan collects UNKNOWN cells into a dense local index
// space, then every REVEALED numbered cell adjacent to at least one
// UNKNOWN neighbor contributes one Constraint. Constraints sharing a
// variable are then grouped into components by dsu.DSU, over constraint
// indices rather than graph vertices.
package frontier
