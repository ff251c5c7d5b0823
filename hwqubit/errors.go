package hwqubit

import "errors"

// ErrCoordinateOccupied is returned by Move when the destination
// coordinate already holds a hardware qubit.
var ErrCoordinateOccupied = errors.New("hwqubit: coordinate occupied")

// ErrCoordinateEmpty is returned when a query requires a coordinate to
// currently hold a hardware qubit and it does not.
var ErrCoordinateEmpty = errors.New("hwqubit: coordinate empty")

// ErrInvalidCoordinate is returned when a coordinate index does not
// name a real site.
var ErrInvalidCoordinate = errors.New("hwqubit: invalid coordinate")
