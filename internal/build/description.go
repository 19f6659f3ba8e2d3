package build

import "strings"

// normalizeDescription strips at most one leading and one trailing newline
// from a description. The recognizer has already removed the quote
// delimiters; an absent description stays the empty string, so downstream
// consumers can always treat descriptions as present.
func normalizeDescription(desc string) string {
	desc = strings.TrimPrefix(desc, "\n")
	desc = strings.TrimSuffix(desc, "\n")
	return desc
}
