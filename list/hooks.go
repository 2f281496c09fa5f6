package list

// Hooks is the extension point a sequence invokes exactly once per logical
// element addition or removal. The base containers install no-op hooks;
// ownership-tracking variants (see the refcount package) install hooks that
// retain on add and release on remove.
//
// Added is invoked after a value has entered the container: on Add, Insert,
// range insertion, sorted insertion, and on the incoming value of a Set
// overwrite. Removed is invoked for every value leaving the container: on
// Delete, DeleteRange, Remove, Clear, count truncation, and on the outgoing
// value of a Set overwrite. Reordering operations (Exchange, Move, Reverse,
// Sort) never invoke hooks, since membership does not change.
type Hooks[T any] interface {
	Added(item T)
	Removed(item T)
}

type noopHooks[T any] struct{}

func (noopHooks[T]) Added(T) {}

func (noopHooks[T]) Removed(T) {}

// NoopHooks returns hooks that do nothing. This is what the plain
// constructors install.
func NoopHooks[T any]() Hooks[T] {
	return noopHooks[T]{}
}
