package cache

import "errors"

// ErrNonPositiveCapacity is returned by New when capacity <= 0.
var ErrNonPositiveCapacity = errors.New("cache: capacity must be positive")
