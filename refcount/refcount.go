// Package refcount layers shared-ownership bookkeeping on top of the list
// containers. A reference-counted list holds a counted stake in every
// element it stores: it retains the element exactly once when the element
// logically enters the container and releases it exactly once when the
// element leaves (including on Clear, count truncation, and both sides of a
// Set overwrite). Other owners of the same element may exist simultaneously;
// the element's resources are freed only when the last owner releases.
package refcount

import (
	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/list"
	"github.com/amp-labs/amp-lists/zero"
)

// Counted is the contract a reference-counted element must expose. Retain
// increments the ownership count; Release decrements it, and the element
// destroys its resources when the count reaches zero.
type Counted interface {
	Retain()
	Release()
}

// hooks adapts the list hook contract to retain/release calls. Zero-value
// elements are skipped on both sides: count extension via SetCount places
// zero values without an add hook, and the matching removal (Clear, Delete,
// truncation) must not release a stake that was never taken.
type hooks[T Counted] struct{}

func (hooks[T]) Added(item T) {
	if zero.IsZero(item) {
		return
	}

	item.Retain()
}

func (hooks[T]) Removed(item T) {
	if zero.IsZero(item) {
		return
	}

	item.Release()
}

// Hooks returns list hooks that retain on add and release on remove. Use
// this to assemble a counted container not covered by the constructors
// below.
func Hooks[T Counted]() list.Hooks[T] {
	return hooks[T]{}
}

// NewList creates an ordered list that owns a counted reference to every
// element it stores. Call Clear before discarding the list to release the
// outstanding references.
func NewList[T Counted](cmp compare.Func[T]) *list.List[T] {
	return list.NewWithHooks(cmp, Hooks[T]())
}

// NewSorted creates a sorted list that owns a counted reference to every
// element it stores. Call Clear before discarding the list to release the
// outstanding references.
func NewSorted[T Counted](cmp compare.Func[T], policy list.DuplicatePolicy) *list.Sorted[T] {
	return list.NewSortedWithHooks(cmp, policy, Hooks[T]())
}
