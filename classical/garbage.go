package classical

import (
	"regexp"
	"strings"
	"unicode"
)

// Titles matching any of these are file-listing noise, not piece names.
var garbagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^track\s*\d+$`),
	regexp.MustCompile(`(?i)^audio\s*\d+$`),
	regexp.MustCompile(`(?i)^unknown\b`),
	regexp.MustCompile(`(?i)^sample\b`),
	regexp.MustCompile(`(?i)^preview\b`),
	regexp.MustCompile(`(?i)^[a-z]\d+$`),
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`(?i)^[a-z0-9]{1,4}$`),
	regexp.MustCompile(`^[-_\s.]+$`),
}

var catalogKeyword = regexp.MustCompile(`(?i)\b(op|no|bwv|kv|rv|hob)\b`)

// IsGarbage rejects titles unlikely to name a real piece: too short, numeric
// noise, known filename patterns, or a long single token that reads like a
// raw filename stem. Heuristic and occasionally over-aggressive on long
// catalog-number listings; checks are ordered for early exit.
func IsGarbage(title string) bool {
	value := strings.TrimSpace(title)
	if len(value) < 4 {
		return true
	}
	for _, pattern := range garbagePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}

	var letters, digits int
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}

	if letters < 3 {
		return true
	}
	if digits > letters && !catalogKeyword.MatchString(value) {
		return true
	}
	if !strings.Contains(value, " ") && len(value) > 28 {
		return true
	}
	return false
}
