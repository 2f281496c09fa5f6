package list

// Direction selects which end of a sequence a linear scan starts from.
type Direction int

const (
	// FromBeginning scans forward from index 0.
	FromBeginning Direction = iota

	// FromEnd scans backward from index Count-1.
	FromEnd
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case FromBeginning:
		return "from-beginning"
	case FromEnd:
		return "from-end"
	default:
		return "not recognized"
	}
}
