package list

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/ranges"
)

// Sorted is a growable sequence that maintains ascending order under its
// comparator as a structural invariant: every insertion goes through a
// binary search, and no positional insert or explicit sort is exposed.
type Sorted[T any] struct {
	sequence[T]
	policy DuplicatePolicy
}

// NewSorted creates an empty Sorted list ordered by cmp, with the given
// duplicate policy. The comparator must stay consistent for the list's
// lifetime; changing it underneath a populated list is undefined.
func NewSorted[T any](cmp compare.Func[T], policy DuplicatePolicy) *Sorted[T] {
	return NewSortedWithHooks(cmp, policy, NoopHooks[T]())
}

// NewSortedWithHooks creates an empty Sorted list with the given add/remove
// hooks installed. The hooks fire exactly once per logical element addition
// and removal; see Hooks for the exact call sites.
func NewSortedWithHooks[T any](cmp compare.Func[T], policy DuplicatePolicy, hooks Hooks[T]) *Sorted[T] {
	return &Sorted[T]{
		sequence: sequence[T]{
			cmp:   cmp,
			hooks: hooks,
		},
		policy: policy,
	}
}

// CollectSorted builds a Sorted list from any enumerable source. Elements
// are inserted one at a time, so the order invariant holds throughout and
// the duplicate policy applies to every element.
func CollectSorted[T any](cmp compare.Func[T], policy DuplicatePolicy, seq iter.Seq[T]) (*Sorted[T], error) {
	result := NewSorted[T](cmp, policy)

	if err := result.AddSeq(seq); err != nil {
		return nil, err
	}

	return result, nil
}

// DuplicatePolicy returns the policy the list was constructed with.
func (s *Sorted[T]) DuplicatePolicy() DuplicatePolicy {
	return s.policy
}

// Add inserts value at its sorted position. When an equal element is
// already stored, the duplicate policy decides: Ignore returns nil without
// inserting, Accept inserts after the run of equal elements (so equal-key
// elements iterate in insertion order), and Error returns ErrDuplicateItem
// leaving the list unchanged.
func (s *Sorted[T]) Add(value T) error {
	position, found := ranges.Search(s.items, value, s.cmp, 0, s.count)

	if found {
		switch s.policy {
		case DuplicatePolicyIgnore:
			return nil
		case DuplicatePolicyError:
			return fmt.Errorf("%w: equal element already stored at index %d", ErrDuplicateItem, position)
		case DuplicatePolicyAccept:
			for position < s.count && s.cmp(s.items[position], value) == 0 {
				position++
			}
		}
	}

	return s.insert(position, value)
}

// AddAll inserts every value, one at a time, keeping the order invariant
// after each insertion. It stops at the first failing insertion.
func (s *Sorted[T]) AddAll(values ...T) error {
	for _, value := range values {
		if err := s.Add(value); err != nil {
			return err
		}
	}

	return nil
}

// AddSeq inserts every element yielded by seq, one at a time, keeping the
// order invariant after each insertion.
func (s *Sorted[T]) AddSeq(seq iter.Seq[T]) error {
	for value := range seq {
		if err := s.Add(value); err != nil {
			return err
		}
	}

	return nil
}
