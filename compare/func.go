package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Func is a total-order comparator over T. It returns a negative value when
// a orders before b, zero when the two are equal under the order, and a
// positive value when a orders after b.
//
// A Func must be consistent (irreflexive less-than, transitive, antisymmetric
// on equal-key elements) for the lifetime of any container constructed with
// it. Swapping the comparator underneath a sorted container is undefined.
type Func[T any] func(a, b T) int

// Natural returns the natural-order comparator for an ordered primitive type
// (integers, floats, strings). This is the documented default for containers
// over ordinal element types; non-ordinal types must supply their own Func.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}

// FromLess adapts a strict less-than predicate into a Func.
// Elements that are mutually not-less compare as equal.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reversed returns a comparator producing the inverse order of cmp.
func Reversed[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// NaturalStrings returns a comparator that orders strings using natural sort
// order, where digit runs compare numerically: "file2" orders before
// "file10". Ties under the natural order fall back to plain string order so
// the result is a total order.
func NaturalStrings() Func[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		if natsort.Compare(a, b) {
			return -1
		}

		if natsort.Compare(b, a) {
			return 1
		}

		// Natural-order tie between distinct strings (e.g. "a01" vs "a1").
		return cmp.Compare(a, b)
	}
}
