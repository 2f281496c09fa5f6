package list

import (
	"iter"

	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/ranges"
)

// List is a growable sequence keeping elements in insertion order, except
// where the caller explicitly reorders via Exchange, Move, Reverse, or Sort.
type List[T any] struct {
	sequence[T]
}

// New creates an empty List. The comparator defines equality for the search
// and removal operations (a match is cmp(a, b) == 0) and the default order
// for Sort; use compare.Natural for ordinal element types.
func New[T any](cmp compare.Func[T]) *List[T] {
	return NewWithHooks(cmp, NoopHooks[T]())
}

// NewWithHooks creates an empty List with the given add/remove hooks
// installed. The hooks fire exactly once per logical element addition and
// removal; see Hooks for the exact call sites.
func NewWithHooks[T any](cmp compare.Func[T], hooks Hooks[T]) *List[T] {
	return &List[T]{
		sequence: sequence[T]{
			cmp:   cmp,
			hooks: hooks,
		},
	}
}

// Collect builds a List from any enumerable source, preserving the source's
// order.
func Collect[T any](cmp compare.Func[T], seq iter.Seq[T]) (*List[T], error) {
	result := New[T](cmp)

	if err := result.AddSeq(seq); err != nil {
		return nil, err
	}

	return result, nil
}

// Add appends value to the end of the list. Amortized O(1).
func (l *List[T]) Add(value T) error {
	return l.insert(l.count, value)
}

// AddAll appends every value in order.
func (l *List[T]) AddAll(values ...T) error {
	if err := l.grow(l.count + len(values)); err != nil {
		return err
	}

	for _, value := range values {
		l.items[l.count] = value
		l.count++
		l.hooks.Added(value)
	}

	return nil
}

// AddSeq appends every element yielded by seq, in yield order.
func (l *List[T]) AddSeq(seq iter.Seq[T]) error {
	for value := range seq {
		if err := l.Add(value); err != nil {
			return err
		}
	}

	return nil
}

// Insert places value at index, shifting the tail right by one. index may
// equal Count, which is equivalent to Add. Returns ErrOutOfRange when index
// is not in [0, Count].
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.count {
		return outOfRange(index, l.count)
	}

	return l.insert(index, value)
}

// InsertAll places the values at index in order, shifting the tail right by
// len(values). Returns ErrOutOfRange when index is not in [0, Count].
func (l *List[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > l.count {
		return outOfRange(index, l.count)
	}

	if len(values) == 0 {
		return nil
	}

	if err := l.grow(l.count + len(values)); err != nil {
		return err
	}

	if tail := l.count - index; tail > 0 {
		ranges.Relocate(l.items, index, index+len(values), tail)
	}

	for i, value := range values {
		l.items[index+i] = value
	}

	l.count += len(values)

	for _, value := range values {
		l.hooks.Added(value)
	}

	return nil
}

// Set replaces the element at index with value. The add hook fires for the
// incoming value and the removal hook for the outgoing one, keeping
// ownership-tracking variants balanced across the overwrite. Returns
// ErrOutOfRange when index is not in [0, Count).
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= l.count {
		return outOfRange(index, l.count)
	}

	old := l.items[index]

	// Retain-new before release-old, so replacing an element with itself
	// never drops the last ownership stake mid-operation.
	l.hooks.Added(value)
	l.items[index] = value
	l.hooks.Removed(old)

	return nil
}

// Exchange swaps the elements at i and j. No hooks fire: membership is
// unchanged.
func (l *List[T]) Exchange(i, j int) error {
	if i < 0 || i >= l.count {
		return outOfRange(i, l.count)
	}

	if j < 0 || j >= l.count {
		return outOfRange(j, l.count)
	}

	ranges.Swap(l.items, i, j)

	return nil
}

// Move removes the element at current and re-inserts it at target, shifting
// the span between the two positions by one. No hooks fire: membership is
// unchanged.
func (l *List[T]) Move(current, target int) error {
	if current < 0 || current >= l.count {
		return outOfRange(current, l.count)
	}

	if target < 0 || target >= l.count {
		return outOfRange(target, l.count)
	}

	if current == target {
		return nil
	}

	item := l.items[current]

	if current < target {
		ranges.Relocate(l.items, current+1, current, target-current)
	} else {
		ranges.Relocate(l.items, target, target+1, current-target)
	}

	l.items[target] = item

	return nil
}

// Reverse reverses the element order in place. No hooks fire.
func (l *List[T]) Reverse() {
	for i, j := 0, l.count-1; i < j; i, j = i+1, j-1 {
		ranges.Swap(l.items, i, j)
	}
}

// Sort sorts the list ascending under the container's comparator. Equal
// elements do not keep their relative order.
func (l *List[T]) Sort() {
	l.SortFunc(l.cmp)
}

// SortFunc sorts the list ascending under an explicit comparator. Equal
// elements do not keep their relative order.
func (l *List[T]) SortFunc(cmp compare.Func[T]) {
	ranges.Sort(l.items, cmp, 0, l.count)
}
