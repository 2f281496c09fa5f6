package refcount

import "github.com/amp-labs/amp-lists/assert"

// Ref is a minimal Counted implementation wrapping a payload and a
// destructor. It is the simplest way to put an owned resource into a
// counted list: the destructor runs exactly once, when the last owner
// releases.
//
// Ref counts are not synchronized; like the containers themselves, they
// assume a single-threaded caller.
type Ref[T any] struct {
	value     T
	count     int
	destroy   func(T)
	destroyed bool
}

// NewRef creates a Ref holding value with an ownership count of one (the
// caller). destroy may be nil when the payload needs no teardown.
func NewRef[T any](value T, destroy func(T)) *Ref[T] {
	return &Ref[T]{
		value:   value,
		count:   1,
		destroy: destroy,
	}
}

// Value returns the payload. Accessing a destroyed Ref is a contract
// violation.
func (r *Ref[T]) Value() T {
	assert.False(r.destroyed, "access to destroyed ref")

	return r.value
}

// Count returns the current ownership count.
func (r *Ref[T]) Count() int {
	return r.count
}

// Destroyed reports whether the last owner has released the Ref.
func (r *Ref[T]) Destroyed() bool {
	return r.destroyed
}

// Retain increments the ownership count.
func (r *Ref[T]) Retain() {
	assert.False(r.destroyed, "retain of destroyed ref")

	r.count++
}

// Release decrements the ownership count, running the destructor when the
// count reaches zero. Releasing more times than retained is a contract
// violation.
func (r *Ref[T]) Release() {
	assert.True(r.count > 0, "release of ref with count 0")

	r.count--

	if r.count == 0 {
		r.destroyed = true

		if r.destroy != nil {
			r.destroy(r.value)
		}
	}
}
