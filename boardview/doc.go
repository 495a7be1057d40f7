// Package boardview defines the read-only contract the solver consumes:
// cell coordinates, visibility/game-state enums, the 8-neighborhood
// function, and the View interface itself.
//
// Nothing in this package mutates a board. The concrete game mechanics
// (mine placement, flood fill, chording) live in package board, which
// implements View; boardview only describes the shape every solver
// collaborator needs to agree on.
package boardview
