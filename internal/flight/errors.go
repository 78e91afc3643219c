package flight

import "errors"

// ErrInvalidConfig indicates a time step or time budget that cannot bound a
// run.
var ErrInvalidConfig = errors.New("flight: invalid run configuration")
