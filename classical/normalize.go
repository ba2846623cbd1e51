package classical

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	foldMarks  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	whitespace = regexp.MustCompile(`\s+`)
)

// Normalize folds text down to the comparable form every matcher in this
// package works on: diacritics stripped, lower-cased, anything that is not a
// letter or digit blanked, whitespace collapsed. Total and idempotent.
func Normalize(value string) string {
	folded, _, err := transform.String(foldMarks, value)
	if err != nil {
		folded = value
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return collapse(b.String())
}

// SafeDecode undoes percent-encoding, passing malformed input through as is.
func SafeDecode(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

func collapse(value string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(value, " "))
}

// containsWord reports whether normalized text carries term as a whole word,
// bounded by spaces or the string edges. Both arguments must already be
// normalized.
func containsWord(text, term string) bool {
	return text == term ||
		strings.HasPrefix(text, term+" ") ||
		strings.HasSuffix(text, " "+term) ||
		strings.Contains(text, " "+term+" ")
}

func lastField(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
