//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// If the assertion fails, it panics with a message.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// ValidIndex asserts that index addresses a live slot of a buffer holding
// count elements, i.e. 0 <= index < count.
func ValidIndex(index, count int) {
	// Intentionally left blank
}

// ValidRange asserts that the sub-range [index, index+count) lies entirely
// within a buffer of the given length. A zero-count range at index == length
// is valid.
func ValidRange(index, count, length int) {
	// Intentionally left blank
}
