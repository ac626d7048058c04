package engine

import "errors"

// ErrConfiguration is returned when the engine is configured with a
// transposition table sized to zero, or Limits with every budget unset and
// Infinite false.
var ErrConfiguration = errors.New("engine: invalid configuration")
