// Package slug derives filesystem-safe workstream identifiers from
// free-text titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is the identifier used when a title normalizes to nothing.
// The system never produces an empty directory name.
const Fallback = "idea"

// stripMarks decomposes text and removes combining marks, so "café"
// becomes "cafe".
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slugify converts a title to a kebab-case ASCII identifier.
//
// Diacritics are stripped, every run of characters outside [a-zA-Z0-9] is
// collapsed to a single "-", leading and trailing separators are trimmed,
// and the result is lowercased. Titles that yield nothing (empty input,
// entirely non-ASCII input) return [Fallback]. The function is pure and
// deterministic: equal titles always produce equal slugs.
func Slugify(title string) string {
	normalized, _, err := transform.String(stripMarks, title)
	if err != nil {
		normalized = title
	}

	var b strings.Builder
	b.Grow(len(normalized))
	pendingSep := false
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingSep = true
		}
	}

	s := b.String()
	if s == "" {
		return Fallback
	}
	return s
}
