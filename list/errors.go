package list

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or count argument falls
	// outside the valid bound for the container's current state, e.g. a Get
	// at index >= Count or a Delete at a negative index.
	ErrOutOfRange = errors.New("index out of range")

	// ErrDuplicateItem is returned by a sorted list's Add when the value
	// compares equal to a stored element and the list was constructed with
	// DuplicatePolicyError. The list is left unchanged.
	ErrDuplicateItem = errors.New("duplicate item")

	// ErrAllocation is returned when capacity growth cannot be satisfied,
	// such as when doubling the capacity would overflow.
	ErrAllocation = errors.New("allocation failure")
)

// outOfRange wraps ErrOutOfRange with the offending index and the count it
// was checked against.
func outOfRange(index, count int) error {
	return fmt.Errorf("%w: index %d with count %d", ErrOutOfRange, index, count)
}
