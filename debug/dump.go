// Package debug provides debugging utilities for local development only (not for production use).
package debug

import (
	"encoding/json"
	"io"
	"iter"
	"log/slog"
)

// DumpSeq collects the elements of an enumerable sequence and dumps them as
// formatted JSON to the given writer. Handy for inspecting list contents in
// tests and during development.
func DumpSeq[T any](seq iter.Seq[T], w io.Writer) {
	entries := make([]T, 0)

	for item := range seq {
		entries = append(entries, item)
	}

	DumpJSON(entries, w)
}

// DumpJSON dumps the given value as JSON to the given writer. Marshaling
// failures are logged rather than returned, since this is a best-effort
// development aid.
func DumpJSON(v any, w io.Writer) {
	encoder := json.NewEncoder(w)

	// JSON may have URLs with special symbols which shouldn't be escaped. Ex: `&`.
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		slog.Error("error marshaling to JSON", "error", err)
	}
}
