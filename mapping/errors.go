package mapping

import "errors"

// ErrNotMapped is returned when a query names a qubit with no current
// counterpart assignment.
var ErrNotMapped = errors.New("mapping: qubit not mapped")

// ErrSwapRequiresMappedEndpoint is returned by Swap when neither hw
// qubit passed in has a circuit qubit assigned.
var ErrSwapRequiresMappedEndpoint = errors.New("mapping: swap requires at least one mapped endpoint")
