package dag

import "errors"

// ErrNotExecutable is returned by Execute when called on a vertex that
// is not currently executable.
var ErrNotExecutable = errors.New("dag: vertex is not executable")
