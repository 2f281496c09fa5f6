// Package assert provides development-build contract checks for the
// container packages, primarily index and range validity. Checks panic on
// violation in default builds and compile to no-ops under the
// `assertions_disabled` build tag, for trusted call paths that have already
// validated their arguments.
package assert
