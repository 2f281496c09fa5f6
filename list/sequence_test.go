package list_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-lists/compare"
	"github.com/amp-labs/amp-lists/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records hook invocations for verifying the exactly-once contract.
type recorder[T any] struct {
	added   []T
	removed []T
}

func (r *recorder[T]) Added(item T) {
	r.added = append(r.added, item)
}

func (r *recorder[T]) Removed(item T) {
	r.removed = append(r.removed, item)
}

var _ list.Hooks[int] = (*recorder[int])(nil)

func newIntList(t *testing.T, values ...int) *list.List[int] {
	t.Helper()

	l := list.New(compare.Natural[int]())
	require.NoError(t, l.AddAll(values...))

	return l
}

func TestGet(t *testing.T) {
	t.Parallel()

	l := newIntList(t, 10, 20, 30)

	t.Run("returns the element at a valid index", func(t *testing.T) {
		t.Parallel()

		got, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 20, got)
	})

	t.Run("fails out of range at count", func(t *testing.T) {
		t.Parallel()

		_, err := l.Get(3)
		assert.ErrorIs(t, err, list.ErrOutOfRange)
	})

	t.Run("fails out of range on negative index", func(t *testing.T) {
		t.Parallel()

		_, err := l.Get(-1)
		assert.ErrorIs(t, err, list.ErrOutOfRange)
	})
}

func TestGrowthPolicy(t *testing.T) {
	t.Parallel()

	t.Run("capacity doubles element by element", func(t *testing.T) {
		t.Parallel()

		l := list.New(compare.Natural[int]())
		assert.Zero(t, l.Capacity())

		var capacities []int

		for i := 0; i < 9; i++ {
			require.NoError(t, l.Add(i))

			capacities = append(capacities, l.Capacity())
		}

		assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, capacities)
	})

	t.Run("bulk insertion jumps straight to the requested minimum", func(t *testing.T) {
		t.Parallel()

		l := list.New(compare.Natural[int]())
		require.NoError(t, l.AddAll(1, 2, 3, 4, 5))

		assert.Equal(t, 5, l.Capacity())
	})

	t.Run("capacity never shrinks on removal", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3, 4)
		capacity := l.Capacity()

		require.NoError(t, l.DeleteRange(0, 3))

		assert.Equal(t, capacity, l.Capacity())
	})
}

func TestSetCount(t *testing.T) {
	t.Parallel()

	t.Run("truncation removes the tail through the removal hook", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[int]{}
		l := list.NewWithHooks(compare.Natural[int](), rec)
		require.NoError(t, l.AddAll(1, 2, 3, 4))

		require.NoError(t, l.SetCount(2))

		assert.Equal(t, 2, l.Count())
		assert.Equal(t, []int{1, 2}, l.Entries())
		assert.Equal(t, []int{3, 4}, rec.removed)
	})

	t.Run("extension fills with zero values without add hooks", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[int]{}
		l := list.NewWithHooks(compare.Natural[int](), rec)
		require.NoError(t, l.Add(7))

		hooked := len(rec.added)

		require.NoError(t, l.SetCount(3))

		assert.Equal(t, 3, l.Count())
		assert.Equal(t, []int{7, 0, 0}, l.Entries())
		assert.Len(t, rec.added, hooked)
	})

	t.Run("rejects a negative count", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1)

		assert.ErrorIs(t, l.SetCount(-1), list.ErrOutOfRange)
	})
}

func TestSetCapacity(t *testing.T) {
	t.Parallel()

	t.Run("reallocates to the exact capacity", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2)

		require.NoError(t, l.SetCapacity(10))

		assert.Equal(t, 10, l.Capacity())
		assert.Equal(t, []int{1, 2}, l.Entries())
	})

	t.Run("truncates first when capacity is below count", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3, 4)

		require.NoError(t, l.SetCapacity(2))

		assert.Equal(t, 2, l.Count())
		assert.Equal(t, 2, l.Capacity())
		assert.Equal(t, []int{1, 2}, l.Entries())
	})

	t.Run("rejects a negative capacity", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1)

		assert.ErrorIs(t, l.SetCapacity(-1), list.ErrOutOfRange)
	})
}

func TestTrimExcess(t *testing.T) {
	t.Parallel()

	l := newIntList(t, 1, 2, 3)
	require.NoError(t, l.SetCapacity(32))

	l.TrimExcess()
	assert.Equal(t, 3, l.Capacity())

	// Idempotent: a second trim changes nothing.
	l.TrimExcess()
	assert.Equal(t, 3, l.Capacity())
	assert.Equal(t, []int{1, 2, 3}, l.Entries())
}

func TestLinearSearch(t *testing.T) {
	t.Parallel()

	l := newIntList(t, 10, 20, 10, 30)

	t.Run("IndexOf finds the first match", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, l.IndexOf(10))
		assert.Equal(t, 3, l.IndexOf(30))
		assert.Equal(t, -1, l.IndexOf(99))
	})

	t.Run("LastIndexOf finds the last match", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 2, l.LastIndexOf(10))
		assert.Equal(t, -1, l.LastIndexOf(99))
	})

	t.Run("IndexOfDirected honors the direction", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, l.IndexOfDirected(10, list.FromBeginning))
		assert.Equal(t, 2, l.IndexOfDirected(10, list.FromEnd))
	})

	t.Run("Contains", func(t *testing.T) {
		t.Parallel()

		assert.True(t, l.Contains(20))
		assert.False(t, l.Contains(99))
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	l := newIntList(t, 1, 3, 3, 5, 7)

	t.Run("finds an equal element", func(t *testing.T) {
		t.Parallel()

		pos, found := l.Search(3)
		require.True(t, found)

		got, err := l.Get(pos)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("reports the insertion point when absent", func(t *testing.T) {
		t.Parallel()

		pos, found := l.Search(4)
		assert.False(t, found)
		assert.Equal(t, 3, pos)
	})

	t.Run("SearchFunc uses the explicit comparator", func(t *testing.T) {
		t.Parallel()

		desc := newIntList(t, 7, 5, 3, 1)

		pos, found := desc.SearchFunc(5, compare.Reversed(compare.Natural[int]()))
		require.True(t, found)
		assert.Equal(t, 1, pos)
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the element and shifts the tail", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3)

		require.NoError(t, l.Delete(1))

		assert.Equal(t, []int{1, 3}, l.Entries())
		assert.Equal(t, 2, l.Count())
	})

	t.Run("invokes the removal hook once", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[int]{}
		l := list.NewWithHooks(compare.Natural[int](), rec)
		require.NoError(t, l.AddAll(1, 2, 3))

		require.NoError(t, l.Delete(0))

		assert.Equal(t, []int{1}, rec.removed)
	})

	t.Run("fails out of range", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1)

		assert.ErrorIs(t, l.Delete(1), list.ErrOutOfRange)
		assert.ErrorIs(t, l.Delete(-1), list.ErrOutOfRange)
	})
}

func TestDeleteRange(t *testing.T) {
	t.Parallel()

	t.Run("removes the range and shifts the tail", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3, 4, 5)

		require.NoError(t, l.DeleteRange(1, 2))

		assert.Equal(t, []int{1, 4, 5}, l.Entries())
		assert.Equal(t, 3, l.Count())
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2)

		require.NoError(t, l.DeleteRange(1, 0))

		assert.Equal(t, []int{1, 2}, l.Entries())
	})

	t.Run("invokes the removal hook per element", func(t *testing.T) {
		t.Parallel()

		rec := &recorder[int]{}
		l := list.NewWithHooks(compare.Natural[int](), rec)
		require.NoError(t, l.AddAll(1, 2, 3, 4))

		require.NoError(t, l.DeleteRange(1, 2))

		assert.Equal(t, []int{2, 3}, rec.removed)
	})

	t.Run("fails out of range when the range leaves the live zone", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3)

		assert.ErrorIs(t, l.DeleteRange(2, 2), list.ErrOutOfRange)
		assert.ErrorIs(t, l.DeleteRange(-1, 1), list.ErrOutOfRange)
		assert.ErrorIs(t, l.DeleteRange(1, -1), list.ErrOutOfRange)
	})

	t.Run("huge count fails out of range without mutating", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3)

		// index+count wraps negative here; the guard must still reject it.
		assert.ErrorIs(t, l.DeleteRange(1, math.MaxInt), list.ErrOutOfRange)
		assert.Equal(t, 3, l.Count())
		assert.Equal(t, []int{1, 2, 3}, l.Entries())
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes the first match and returns its former index", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 10, 20, 10)

		index, found := l.Remove(10)
		require.True(t, found)
		assert.Zero(t, index)
		assert.Equal(t, []int{20, 10}, l.Entries())
	})

	t.Run("RemoveDirected from the end removes the last match", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 10, 20, 10)

		index, found := l.RemoveDirected(10, list.FromEnd)
		require.True(t, found)
		assert.Equal(t, 2, index)
		assert.Equal(t, []int{10, 20}, l.Entries())
	})

	t.Run("reports not found without mutating", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2)

		index, found := l.Remove(99)
		assert.False(t, found)
		assert.Equal(t, -1, index)
		assert.Equal(t, []int{1, 2}, l.Entries())
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	rec := &recorder[int]{}
	l := list.NewWithHooks(compare.Natural[int](), rec)
	require.NoError(t, l.AddAll(1, 2, 3))

	capacity := l.Capacity()

	l.Clear()

	assert.Zero(t, l.Count())
	assert.Equal(t, capacity, l.Capacity())
	assert.Equal(t, []int{1, 2, 3}, rec.removed)
	assert.Empty(t, l.Entries())
}

func TestEntriesRoundTrip(t *testing.T) {
	t.Parallel()

	original := newIntList(t, 3, 1, 4, 1, 5)

	rebuilt := list.New(compare.Natural[int]())
	require.NoError(t, rebuilt.AddAll(original.Entries()...))

	assert.Equal(t, original.Entries(), rebuilt.Entries())
	assert.Equal(t, original.Count(), rebuilt.Count())
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence yields no values", func(t *testing.T) {
		t.Parallel()

		l := list.New(compare.Natural[int]())

		assert.True(t, l.First().Empty())
		assert.True(t, l.Last().Empty())
	})

	t.Run("populated sequence yields both ends", func(t *testing.T) {
		t.Parallel()

		l := newIntList(t, 1, 2, 3)

		assert.Equal(t, 1, l.First().GetOrElse(-1))
		assert.Equal(t, 3, l.Last().GetOrElse(-1))
	})
}
