// Package textutil provides search-text normalization.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics so that catalog search matches
// regardless of accents ("Düğme" -> "dugme"). Falls back to plain
// lowercasing if the transform fails.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
