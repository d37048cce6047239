// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
// "Bank Jobs " → "bank-jobs". The result may be empty.
func Make(s string) string {
	lower := strings.ToLower(s)
	hyphenated := nonAlnum.ReplaceAllString(lower, "-")
	return strings.Trim(hyphenated, "-")
}
