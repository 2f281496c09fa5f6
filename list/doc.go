// Package list provides the flat contiguous-array container family: a
// growable base sequence plus an ordered and a sorted specialization.
//
// # Overview
//
// [List] keeps elements in insertion order and supports positional insertion,
// swapping, moving, reversing, and explicit sorting. [Sorted] maintains
// ascending order as a structural invariant; every insertion goes through a
// binary search, and a [DuplicatePolicy] decides what happens when an equal
// element is already present.
//
// Both share the same base mechanics: a contiguous backing buffer whose
// allocated capacity grows by doubling (never shrinking except through
// SetCapacity or TrimExcess), linear and binary search, single and ranged
// deletion, and an iteration protocol (a cursor [Enumerator] plus
// range-over-func views).
//
// # Comparators
//
// Every container takes an explicit [compare.Func] at construction; it
// defines both ordering (sorted lists, Sort, Search) and equality
// (IndexOf, Contains, Remove treat cmp(a, b) == 0 as a match). For ordinal
// element types, compare.Natural is the documented default. The comparator
// must stay consistent for the container's lifetime.
//
// # Ownership hooks
//
// Containers accept a [Hooks] implementation invoked exactly once per
// logical add and remove. This is how the refcount package layers
// retain/release ownership bookkeeping on top of the base mechanics without
// changing them.
//
// # Thread safety
//
// None. Every operation is a direct, synchronous computation over the
// in-memory buffer; callers needing concurrent access must supply external
// synchronization.
package list
