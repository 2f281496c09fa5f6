package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated returns a comparator that orders strings according to the
// collation rules of the given language. Use this instead of Natural or
// NaturalStrings when element order must match what a user of that locale
// expects (e.g. "ä" sorting with "a" under German rules).
//
// Building a collator is not free; construct the comparator once and reuse
// it for the lifetime of the container.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	coll := collate.New(tag, opts...)

	return coll.CompareString
}
