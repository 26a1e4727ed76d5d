// Package slug derives URL-safe lookup keys from display names.
//
// A slug is lowercase ASCII letters, digits and single hyphens, with no
// leading or trailing hyphen. Accented letters are folded to their base
// letter ("Café Élan" → "cafe-elan"); everything else separates words.
//
// Uniqueness is not decided here. Stores call Candidate with an increasing
// attempt number until an insert succeeds against a unique index:
//
//	tent-valley, tent-valley-2, tent-valley-3, ...
//
// A base that collides with a fixed route segment ("new") is never used
// bare; its first candidate is already suffixed.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when a name contains nothing slug-worthy.
const Fallback = "campground"

// MaxLen caps the base slug length (before any numeric suffix).
const MaxLen = 80

// Make returns the base slug for name.
func Make(name string) string {
	folded := fold(name)

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	s := b.String()
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	if s == "" {
		return Fallback
	}
	return s
}

// reserved are segments the campgrounds router matches before {slug}.
var reserved = map[string]bool{
	"new": true,
}

// Reserved reports whether s would be shadowed by a fixed route.
func Reserved(s string) bool {
	return reserved[s]
}

// Candidate returns the slug to try on the given 1-based attempt.
// Attempt 1 is the base itself; attempt n > 1 appends "-n". For a reserved
// base the numbering starts at 2.
func Candidate(base string, attempt int) string {
	if attempt < 1 {
		attempt = 1
	}
	if Reserved(base) {
		attempt++
	}
	if attempt == 1 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}

// Valid reports whether s has slug shape and is not reserved. Handlers use
// it to answer 404 for malformed path segments before touching the store.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLen+8 || Reserved(s) {
		return false
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevDash := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevDash = false
		case c == '-':
			if prevDash {
				return false
			}
			prevDash = true
		default:
			return false
		}
	}
	return true
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
