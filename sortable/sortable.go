// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-lists/compare"
)

// Sortable combines equality with a strict less-than ordering. Types
// implementing it can be stored in sorted containers without a hand-written
// comparator (see Compare).
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns the comparator induced by a Sortable type's LessThan and
// Equals methods. Elements that are neither less-than nor equal compare as
// greater.
func Compare[T Sortable[T]]() compare.Func[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}
}
