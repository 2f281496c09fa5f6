// Package ranges provides the low-level array primitives shared by the list
// containers: relocating a contiguous run of elements, clearing a run of
// slots, sorting a sub-range, and binary-searching a sorted sub-range. All
// routines are stateless and operate directly on caller-owned backing
// storage.
//
// Index/count arguments are a caller contract: they are validated by the
// assert package in default builds and unchecked when assertions are
// compiled out (build tag `assertions_disabled`).
package ranges

import (
	"github.com/amp-labs/amp-lists/assert"
	"github.com/amp-labs/amp-lists/compare"
)

// Relocate moves count elements within items from position from to position
// to. Overlapping source and destination ranges are handled safely: the
// result is as if the elements were moved one at a time back-to-front when
// to > from and front-to-back otherwise, which the bulk copy below
// guarantees for slices sharing one backing array.
//
// The vacated slots keep their previous contents; callers that must not
// retain stale element references afterwards follow up with Clear.
func Relocate[T any](items []T, from, to, count int) {
	if count == 0 || from == to {
		return
	}

	assert.ValidRange(from, count, len(items))
	assert.ValidRange(to, count, len(items))

	copy(items[to:to+count], items[from:from+count])
}

// Clear zeroes count slots starting at index so the buffer no longer holds
// references to the elements previously stored there. For plain value
// element types this merely overwrites bits; for pointer-holding element
// types it is what allows the collector to reclaim elements that have
// logically left the container.
func Clear[T any](items []T, index, count int) {
	if count == 0 {
		return
	}

	assert.ValidRange(index, count, len(items))

	clear(items[index : index+count])
}

// Swap exchanges the elements at positions i and j.
func Swap[T any](items []T, i, j int) {
	assert.ValidIndex(i, len(items))
	assert.ValidIndex(j, len(items))

	items[i], items[j] = items[j], items[i]
}

// Sort sorts the sub-range [index, index+count) of items in place, in the
// ascending order defined by cmp. The algorithm is a partition-exchange sort
// with a middle-element pivot; it recurses into the smaller partition and
// iterates on the larger one, bounding stack depth at O(log n). Average cost
// is O(n log n). Equal elements do not keep their relative order.
func Sort[T any](items []T, cmp compare.Func[T], index, count int) {
	assert.ValidRange(index, count, len(items))

	if count > 1 {
		quickSort(items, cmp, index, index+count-1)
	}
}

// quickSort sorts items[lo..hi] inclusive.
func quickSort[T any](items []T, cmp compare.Func[T], lo, hi int) {
	for lo < hi {
		i, j := lo, hi
		pivot := items[lo+(hi-lo)/2]

		for i <= j {
			for cmp(items[i], pivot) < 0 {
				i++
			}

			for cmp(items[j], pivot) > 0 {
				j--
			}

			if i <= j {
				items[i], items[j] = items[j], items[i]
				i++
				j--
			}
		}

		// Recurse into the smaller partition, loop on the larger.
		if j-lo < hi-i {
			quickSort(items, cmp, lo, j)
			lo = i
		} else {
			quickSort(items, cmp, i, hi)
			hi = j
		}
	}
}

// Search binary-searches the sorted sub-range [index, index+count) of items
// for item. It returns the leftmost position holding an element equal to
// item (cmp == 0) and true, or the position where item would have to be
// inserted to keep the range sorted and false. A zero count yields
// (index, false). Cost is O(log n).
//
// The sub-range must already be sorted under cmp; Search does not verify
// this.
func Search[T any](items []T, item T, cmp compare.Func[T], index, count int) (int, bool) {
	assert.ValidRange(index, count, len(items))

	lo, hi := index, index+count
	found := false

	for lo < hi {
		mid := lo + (hi-lo)/2

		c := cmp(items[mid], item)
		if c < 0 {
			lo = mid + 1
		} else {
			if c == 0 {
				found = true
			}

			hi = mid
		}
	}

	return lo, found
}
