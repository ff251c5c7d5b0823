package mapper

import "time"

// MappingStats records the size of the input and the wall-clock time
// spent in each phase of Map, mirroring the original's MappingResults
// bookkeeping.
type MappingStats struct {
	NumInitialGates int
	NumMappedGates  int

	PreprocessTime  time.Duration
	MappingTime     time.Duration
	PostprocessTime time.Duration
}
