package models

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a post title: lowercase,
// punctuation stripped, whitespace runs collapsed to single hyphens.
// The result is deterministic for a given title.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
		// Everything else (punctuation, symbols) is dropped.
	}

	return b.String()
}
