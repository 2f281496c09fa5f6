package list

import (
	"iter"

	"github.com/amp-labs/amp-lists/assert"
)

// Enumerator is a single-pass, forward-only cursor over a sequence. It is
// bound to a snapshot of the backing storage and count taken at creation
// time: mutating the source while enumerating is undefined, since the
// snapshot may go stale relative to a reallocated buffer. An Enumerator is
// not restartable; obtain a fresh one to iterate again.
type Enumerator[T any] struct {
	items []T
	index int
}

// Next advances the cursor to the next element, returning false once the
// snapshot is exhausted. The cursor starts before the first element, so
// Next must be called before the first Current.
func (e *Enumerator[T]) Next() bool {
	if e.index+1 >= len(e.items) {
		e.index = len(e.items)

		return false
	}

	e.index++

	return true
}

// Current returns the element under the cursor. Calling Current before the
// first Next, or after Next has returned false, is a contract violation.
func (e *Enumerator[T]) Current() T {
	assert.ValidIndex(e.index, len(e.items))

	return e.items[e.index]
}

// Enumerate returns a cursor positioned before the first element, bound to
// the sequence's storage and count as of this call.
func (s *sequence[T]) Enumerate() *Enumerator[T] {
	return &Enumerator[T]{
		items: s.items[:s.count],
		index: -1,
	}
}

// Seq returns a range-over-func view of the elements in container order,
// built on the same snapshot rule as Enumerate.
func (s *sequence[T]) Seq() iter.Seq[T] {
	items := s.items[:s.count]

	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// All returns a range-over-func view yielding index/element pairs in
// container order, built on the same snapshot rule as Enumerate.
func (s *sequence[T]) All() iter.Seq2[int, T] {
	items := s.items[:s.count]

	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}
