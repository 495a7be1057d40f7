package solver

import "errors"

// ErrNonPositiveCacheSize is returned by New when cfg.CacheSize <= 0.
var ErrNonPositiveCacheSize = errors.New("solver: cache size must be positive")

// ErrInconsistentComponent is the sentinel whose text heads an
// Inconsistency's Message whenever enumeration yields zero solutions for
// a non-empty component —
// the observed board cannot arise from any legal mine configuration.
var ErrInconsistentComponent = errors.New("solver: component admits no legal mine configuration")
