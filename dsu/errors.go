package dsu

import "errors"

// ErrNegativeSize is returned by New when n < 0.
var ErrNegativeSize = errors.New("dsu: size must be non-negative")
