package remap

import "errors"

var (
	// ErrLengthMismatch is returned when a rule's source and destination
	// ranges hold a different number of values.
	ErrLengthMismatch = errors.New("remap: source and destination lengths differ")

	// ErrInvalidRange is returned when a rule range ends before it starts.
	ErrInvalidRange = errors.New("remap: range end is before start")

	// ErrOverflow is returned when a rule triple does not fit in uint64.
	ErrOverflow = errors.New("remap: rule range overflows uint64")
)
