package list

import (
	"fmt"
	"math"

	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/optional"
	"github.com/amp-labs/amp-lists/ranges"
	"github.com/amp-labs/amp-lists/zero"
)

// sequence is the growable base shared by List and Sorted. It owns a
// contiguous backing buffer (len(items) is the capacity) and tracks the
// logical element count separately.
//
// Invariants: 0 <= count <= len(items); slots at [count, len(items)) are
// always zeroed so the buffer never retains references to elements that
// have logically left the container.
type sequence[T any] struct {
	items []T
	count int
	cmp   compare.Func[T]
	hooks Hooks[T]
}

// Count returns the number of elements currently stored.
func (s *sequence[T]) Count() int {
	return s.count
}

// Capacity returns the allocated slot count of the backing buffer.
// Capacity is always >= Count.
func (s *sequence[T]) Capacity() int {
	return len(s.items)
}

// grow ensures the backing buffer holds at least minimum slots. Capacity
// doubles on each growth, except that the first growth from an empty buffer
// jumps straight to minimum. Returns ErrAllocation when the doubling
// computation would overflow.
func (s *sequence[T]) grow(minimum int) error {
	// A negative minimum is an overflowed count+n computation; it must be
	// rejected before the minimum <= capacity early return swallows it.
	if minimum < 0 {
		return fmt.Errorf("%w: element count overflow", ErrAllocation)
	}

	capacity := len(s.items)
	if minimum <= capacity {
		return nil
	}

	newCapacity := minimum

	if capacity > 0 {
		if capacity > math.MaxInt/2 {
			return fmt.Errorf("%w: capacity %d cannot be doubled", ErrAllocation, capacity)
		}

		if doubled := capacity * 2; doubled > newCapacity {
			newCapacity = doubled
		}
	}

	next := make([]T, newCapacity)
	copy(next, s.items[:s.count])
	s.items = next

	return nil
}

// SetCount resizes the logical element count. Shrinking removes the dropped
// tail through the removal hook, exactly like DeleteRange. Growing extends
// the sequence with zero values; the added slots are vacant placeholders and
// do not go through the add hook.
func (s *sequence[T]) SetCount(count int) error {
	switch {
	case count < 0:
		return outOfRange(count, s.count)
	case count < s.count:
		return s.DeleteRange(count, s.count-count)
	case count > s.count:
		if err := s.grow(count); err != nil {
			return err
		}

		// Slots beyond the old count are already zeroed.
		s.count = count
	}

	return nil
}

// SetCapacity reallocates the backing buffer to exactly capacity slots.
// When capacity is below the current count, the excess elements are first
// removed (through the removal hook) so no live element is silently dropped.
func (s *sequence[T]) SetCapacity(capacity int) error {
	if capacity < 0 {
		return outOfRange(capacity, s.count)
	}

	if capacity < s.count {
		if err := s.DeleteRange(capacity, s.count-capacity); err != nil {
			return err
		}
	}

	if capacity == len(s.items) {
		return nil
	}

	next := make([]T, capacity)
	copy(next, s.items[:s.count])
	s.items = next

	return nil
}

// TrimExcess shrinks the backing buffer to exactly the current count,
// releasing the unused capacity. Calling it again immediately is a no-op.
func (s *sequence[T]) TrimExcess() {
	if s.count == len(s.items) {
		return
	}

	next := make([]T, s.count)
	copy(next, s.items[:s.count])
	s.items = next
}

// Get returns the element at index, or ErrOutOfRange when index is not in
// [0, Count).
func (s *sequence[T]) Get(index int) (T, error) {
	if index < 0 || index >= s.count {
		return zero.Value[T](), outOfRange(index, s.count)
	}

	return s.items[index], nil
}

// First returns the first element, or an empty optional when the sequence
// is empty.
func (s *sequence[T]) First() optional.Value[T] {
	if s.count == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.items[0])
}

// Last returns the last element, or an empty optional when the sequence
// is empty.
func (s *sequence[T]) Last() optional.Value[T] {
	if s.count == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.items[s.count-1])
}

// Contains reports whether some stored element compares equal to value.
func (s *sequence[T]) Contains(value T) bool {
	return s.IndexOf(value) >= 0
}

// IndexOf returns the index of the first element comparing equal to value,
// or -1 when no element matches. Cost is O(n).
func (s *sequence[T]) IndexOf(value T) int {
	return s.IndexOfDirected(value, FromBeginning)
}

// LastIndexOf returns the index of the last element comparing equal to
// value, or -1 when no element matches. Cost is O(n).
func (s *sequence[T]) LastIndexOf(value T) int {
	return s.IndexOfDirected(value, FromEnd)
}

// IndexOfDirected scans linearly for an element comparing equal to value,
// forward or backward per direction, returning its index or -1.
func (s *sequence[T]) IndexOfDirected(value T, direction Direction) int {
	if direction == FromEnd {
		for i := s.count - 1; i >= 0; i-- {
			if s.cmp(s.items[i], value) == 0 {
				return i
			}
		}

		return -1
	}

	for i := 0; i < s.count; i++ {
		if s.cmp(s.items[i], value) == 0 {
			return i
		}
	}

	return -1
}

// Search binary-searches for item using the container's comparator. It
// requires the caller to have kept the sequence sorted under that
// comparator (structurally true for Sorted). See SearchFunc for the return
// contract.
func (s *sequence[T]) Search(item T) (int, bool) {
	return s.SearchFunc(item, s.cmp)
}

// SearchFunc binary-searches for item under an explicit comparator the
// sequence must be sorted by. It returns the position of an equal element
// and true, or the position where item would have to be inserted to keep
// order and false. Cost is O(log n).
func (s *sequence[T]) SearchFunc(item T, cmp compare.Func[T]) (int, bool) {
	return ranges.Search(s.items, item, cmp, 0, s.count)
}

// Delete removes the element at index: the removal hook fires for it, the
// tail shifts left by one, and the count decrements. Returns ErrOutOfRange
// when index is not in [0, Count).
func (s *sequence[T]) Delete(index int) error {
	if index < 0 || index >= s.count {
		return outOfRange(index, s.count)
	}

	s.deleteAt(index)

	return nil
}

// deleteAt removes the element at a known-valid index.
func (s *sequence[T]) deleteAt(index int) {
	s.hooks.Removed(s.items[index])

	if tail := s.count - index - 1; tail > 0 {
		ranges.Relocate(s.items, index+1, index, tail)
	}

	s.count--
	ranges.Clear(s.items, s.count, 1)
}

// DeleteRange removes count elements starting at index: the removal hook
// fires for each, the tail shifts left, and the logical count decrements by
// count. A zero count is a no-op. Returns ErrOutOfRange when the range does
// not lie within [0, Count).
func (s *sequence[T]) DeleteRange(index, count int) error {
	if count == 0 {
		return nil
	}

	// count > s.count-index instead of index+count > s.count: the latter
	// wraps for huge counts and lets an invalid range past the guard.
	if index < 0 || count < 0 || index > s.count || count > s.count-index {
		return outOfRange(index, s.count)
	}

	for i := index; i < index+count; i++ {
		s.hooks.Removed(s.items[i])
	}

	if tail := s.count - index - count; tail > 0 {
		ranges.Relocate(s.items, index+count, index, tail)
	}

	s.count -= count
	ranges.Clear(s.items, s.count, count)

	return nil
}

// Remove locates the first element comparing equal to value and deletes it.
// It returns the element's former index and true, or -1 and false when no
// element matched.
func (s *sequence[T]) Remove(value T) (int, bool) {
	return s.RemoveDirected(value, FromBeginning)
}

// RemoveDirected is Remove with an explicit scan direction: FromEnd deletes
// the last matching element instead of the first.
func (s *sequence[T]) RemoveDirected(value T, direction Direction) (int, bool) {
	index := s.IndexOfDirected(value, direction)
	if index < 0 {
		return -1, false
	}

	s.deleteAt(index)

	return index, true
}

// Clear removes every element: the removal hook fires once per element, the
// live slots are zeroed, and the count drops to zero. Capacity is retained;
// use TrimExcess afterwards to release the buffer.
func (s *sequence[T]) Clear() {
	for i := 0; i < s.count; i++ {
		s.hooks.Removed(s.items[i])
	}

	ranges.Clear(s.items, 0, s.count)
	s.count = 0
}

// Entries returns a copy of the stored elements in container order.
func (s *sequence[T]) Entries() []T {
	entries := make([]T, s.count)
	copy(entries, s.items[:s.count])

	return entries
}

// insert grows if needed, shifts the tail right by one, places value at
// index, and fires the add hook. index must be in [0, count].
func (s *sequence[T]) insert(index int, value T) error {
	if err := s.grow(s.count + 1); err != nil {
		return err
	}

	if tail := s.count - index; tail > 0 {
		ranges.Relocate(s.items, index, index+1, tail)
	}

	s.items[index] = value
	s.count++
	s.hooks.Added(value)

	return nil
}
