package circuit

import "errors"

// ErrQubitOutOfRange is returned when a Builder call names a qubit
// index outside the register.
var ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

// ErrClbitOutOfRange is returned when Measure names a classical bit
// index outside the register.
var ErrClbitOutOfRange = errors.New("circuit: classical bit index out of range")

// ErrAlreadyBuilt is returned by Build when called more than once on
// the same Builder.
var ErrAlreadyBuilt = errors.New("circuit: Build already called")
