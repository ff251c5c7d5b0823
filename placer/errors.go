package placer

import "errors"

// ErrUnsupportedGate is raised when the two-qubit batch has no
// executable CZ edges left but the DAG's executable set is still
// non-empty (a gate kind the drain step and the CZ batch both refuse).
var ErrUnsupportedGate = errors.New("placer: unsupported gate in executable set")

// ErrInvariantViolation covers the placer's internal-consistency
// checks: an interaction-zone row too short for a batch's columns, a
// target interaction-zone site unexpectedly occupied, and a vertex
// found not executable at the point Execute is called.
var ErrInvariantViolation = errors.New("placer: invariant violation")

// ErrOutOfRoom is raised when no storage row has enough free capacity
// to absorb an atom being returned from the interaction zone, or the
// sweep for a free site in a permitted zone exhausts the grid.
var ErrOutOfRoom = errors.New("placer: out of room")
