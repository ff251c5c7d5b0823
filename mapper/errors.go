// Package mapper is the orchestration façade: it runs preprocess,
// the placer's mapping loop, and the postprocessor in sequence and
// collects timing statistics, mirroring NeutralAtomMapper::map.
package mapper

import "errors"

// ErrUnsupportedGate is raised by preprocess when an operation's
// (kind, ncontrols) shape is neither a supported single-qubit kind nor
// CZ, or the two-qubit batch contains a non-CZ gate.
var ErrUnsupportedGate = errors.New("mapper: unsupported gate")

// ErrArchitectureMismatch is raised by preprocess when a gate is
// permitted neither locally nor globally anywhere on the machine. It is
// not raised for a gate that is permitted only globally but targets a
// subset of the qubits; the placer emits such a gate as a global
// operation.
var ErrArchitectureMismatch = errors.New("mapper: gate not permitted by this architecture")
