package list

// DuplicatePolicy governs what a sorted list does when Add is called with a
// value comparing equal to an element it already stores.
type DuplicatePolicy int

const (
	// DuplicatePolicyIgnore silently drops the duplicate; Add returns nil
	// without inserting.
	DuplicatePolicyIgnore DuplicatePolicy = iota

	// DuplicatePolicyAccept inserts the duplicate after the run of equal
	// elements already present, so equal-key elements iterate in insertion
	// order.
	DuplicatePolicyAccept

	// DuplicatePolicyError rejects the duplicate: Add returns
	// ErrDuplicateItem and the list is left structurally unchanged.
	DuplicatePolicyError
)

// String returns a human-readable representation of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicatePolicyIgnore:
		return "ignore"
	case DuplicatePolicyAccept:
		return "accept"
	case DuplicatePolicyError:
		return "error"
	default:
		return "not recognized"
	}
}
