// Package norm provides the canonical case form used for searchable fields.
package norm

import "strings"

// Fold returns the canonical form of s used for case-insensitive matching:
// whitespace-trimmed and lower-cased. Stored shadow attributes and query
// terms must both pass through Fold so comparisons agree.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
