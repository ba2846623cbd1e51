package classical

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	audioExtension = regexp.MustCompile(`(?i)\.(ogg|oga|opus|wav|flac|mp3|m4a)$`)
	filePrefix     = regexp.MustCompile(`(?i)^File:`)
	brackets       = regexp.MustCompile(`[\[\]{}()]`)
	underscores    = regexp.MustCompile(`_+`)
	hyphenRuns     = regexp.MustCompile(`\s*[\x{2010}\x{2012}\x{2013}\x{2014}-]+\s*`)

	lowerUpper  = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	letterDigit = regexp.MustCompile(`(\p{L})(\d)`)
	digitLetter = regexp.MustCompile(`(\d)(\p{L})`)

	// tokens are bounded on both sides so that e.g. "Nocturne" or "Opera"
	// never lose their first letters to notation rewriting
	notationOpus = regexp.MustCompile(`(?i)\bopus\b`)
	notationOp   = regexp.MustCompile(`(?i)\bop\b\.?\s*`)
	notationNo   = regexp.MustCompile(`(?i)\bno\b\.?\s*`)
	notationBWV  = regexp.MustCompile(`(?i)\bbwv\b\.?\s*`)
	notationKV   = regexp.MustCompile(`(?i)\bkv\b\.?\s*`)
	notationRV   = regexp.MustCompile(`(?i)\brv\b\.?\s*`)
	notationHob  = regexp.MustCompile(`(?i)\bhob\b\.?\s*`)

	trackNumber    = regexp.MustCompile(`^\d{1,3}\s+(\p{L})`)
	leadingSegment = regexp.MustCompile(`^[^\-:;,]+[\-:;,\s]*`)
	preserveUpper  = regexp.MustCompile(`(?i)^(BWV|KV|RV|HOB)\.?$`)

	bitrateSuffix = regexp.MustCompile(`(?i)_64kb$`)
	labelPrefix   = regexp.MustCompile(`(?i)^onclassical[_-]`)
	trackPrefix   = regexp.MustCompile(`(?i)^track[_-]?\d+[_-]*`)
	discPrefix    = regexp.MustCompile(`^\d{1,2}[-_.\s]*`)
	separators    = regexp.MustCompile(`[._-]`)
)

var smallWords = map[string]struct{}{
	"in": {}, "of": {}, "and": {}, "for": {}, "to": {}, "the": {}, "a": {}, "an": {},
}

// CleanTitle turns a raw catalog title into a readable piece name: filename
// cruft stripped, camel-case and digit runs split apart, opus notation
// normalized, a duplicated leading composer name dropped. Total; never
// returns an error.
func CleanTitle(value, composer string) string {
	title := SafeDecode(value)
	title = filePrefix.ReplaceAllString(title, "")
	title = audioExtension.ReplaceAllString(title, "")
	title = brackets.ReplaceAllString(title, " ")
	title = underscores.ReplaceAllString(title, " ")
	title = hyphenRuns.ReplaceAllString(title, " - ")
	title = collapse(title)

	title = splitCamelAndDigits(title)
	title = normalizeWorkNotation(title)
	title = strings.TrimSpace(trackNumber.ReplaceAllString(title, "$1"))
	title = dropComposerPrefix(title, composer)

	if isMostlyLowercase(title) {
		title = prettyTitle(title)
	}

	return collapse(title)
}

// CleanArchiveFileName pre-cleans an archive item file name before the
// generic cleaner runs: rip-label, track-number and disc-number prefixes
// carry no information about the piece.
func CleanArchiveFileName(name string) string {
	value := SafeDecode(name)
	value = audioExtension.ReplaceAllString(value, "")
	value = bitrateSuffix.ReplaceAllString(value, "")
	value = labelPrefix.ReplaceAllString(value, "")
	value = trackPrefix.ReplaceAllString(value, "")
	value = discPrefix.ReplaceAllString(value, "")
	value = separators.ReplaceAllString(value, " ")
	return collapse(value)
}

func splitCamelAndDigits(value string) string {
	value = lowerUpper.ReplaceAllString(value, "$1 $2")
	value = letterDigit.ReplaceAllString(value, "$1 $2")
	return digitLetter.ReplaceAllString(value, "$1 $2")
}

func normalizeWorkNotation(value string) string {
	value = notationOpus.ReplaceAllString(value, "Op.")
	value = notationOp.ReplaceAllString(value, "Op. ")
	value = notationNo.ReplaceAllString(value, "No. ")
	value = notationBWV.ReplaceAllString(value, "BWV ")
	value = notationKV.ReplaceAllString(value, "KV ")
	value = notationRV.ReplaceAllString(value, "RV ")
	value = notationHob.ReplaceAllString(value, "Hob. ")
	return collapse(value)
}

// dropComposerPrefix strips a leading composer name up to the first
// separator: the composer is rendered separately, not duplicated in the
// title.
func dropComposerPrefix(title, composer string) string {
	if title == "" || composer == "" {
		return title
	}

	var (
		composerNorm = Normalize(composer)
		titleNorm    = Normalize(title)
		lastName     = lastField(composerNorm)
	)
	if composerNorm == "" || titleNorm == "" {
		return title
	}

	if strings.HasPrefix(titleNorm, composerNorm) || (lastName != "" && strings.HasPrefix(titleNorm, lastName)) {
		if stripped := strings.TrimSpace(leadingSegment.ReplaceAllString(title, "")); stripped != "" {
			return stripped
		}
	}
	return title
}

func isMostlyLowercase(value string) bool {
	var letters, lower int
	for _, r := range value {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsLower(r) {
				lower++
			}
		}
	}
	return letters > 0 && float64(lower)/float64(letters) > 0.75
}

// prettyTitle title-cases a mostly-lowercase string, keeping catalog
// acronyms upper-case and connector words lower-case except when first.
func prettyTitle(value string) string {
	parts := strings.Fields(value)
	for index, part := range parts {
		if preserveUpper.MatchString(part) {
			upper := strings.TrimSuffix(strings.ToUpper(part), ".")
			if strings.HasSuffix(part, ".") {
				upper += "."
			}
			parts[index] = upper
			continue
		}

		base := strings.ToLower(part)
		if _, ok := smallWords[base]; ok && index > 0 {
			parts[index] = base
			continue
		}
		runes := []rune(base)
		runes[0] = unicode.ToUpper(runes[0])
		parts[index] = string(runes)
	}
	return strings.Join(parts, " ")
}
