package data

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeID converts a display name into the canonical table key:
// lower-case ASCII with diacritics stripped and separators removed, so
// "Flabébé", "flabebe" and "FLABEBE" all resolve to the same row.
func NormalizeID(name string) string {
	out, _, err := transform.String(stripper, name)
	if err != nil {
		out = name
	}
	out = strings.ToLower(out)
	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
