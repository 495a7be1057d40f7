package frontier

import "errors"

// ErrInconsistentConstraint indicates a built Constraint violates
// 0 <= Remaining <= popcount(Scope) — the observed board cannot arise
// from any legal mine configuration.
var ErrInconsistentConstraint = errors.New("frontier: constraint remaining out of [0, popcount(scope)] range")
