package almanac

import "errors"

var (
	// ErrDuplicateStage is returned when two edges leave the same stage.
	ErrDuplicateStage = errors.New("almanac: stage already has an outgoing map")

	// ErrNilTable is returned when an edge is added without a table.
	ErrNilTable = errors.New("almanac: nil mapping table")

	// ErrEmptyStage is returned when an edge names an empty stage.
	ErrEmptyStage = errors.New("almanac: empty stage name")

	// ErrCycle is returned when a traversal revisits a stage.
	ErrCycle = errors.New("almanac: stage chain does not terminate")

	// ErrEmptyResult is returned when the minimum of an empty range set is requested.
	ErrEmptyResult = errors.New("almanac: no values reached the target stage")

	// ErrOddPairs is returned when interval seeds do not come in (start, length) pairs.
	ErrOddPairs = errors.New("almanac: seed list has an odd number of values")

	// ErrSeedOverflow is returned when a seed range does not fit in uint64.
	ErrSeedOverflow = errors.New("almanac: seed range overflows uint64")
)
