package classical

import (
	"strings"

	"gramophone/entity"
)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "from": {}, "with": {}, "in": {}, "on": {},
	"at": {}, "of": {}, "by": {}, "a": {}, "an": {}, "to": {}, "no": {},
	"op": {}, "opus": {}, "minor": {}, "major": {}, "flat": {}, "sharp": {},
}

const maxQueryTokens = 8

// Context is what the scorer knows about one aggregation request: the
// canonical composer (possibly empty) and up to eight salient query tokens.
type Context struct {
	Composer string
	Tokens   []string
}

// TokenizeQuery extracts the salient tokens of a query: normalized, stop
// words and composer name parts excluded, capped at eight.
func TokenizeQuery(query, composer string) []string {
	composerParts := map[string]struct{}{}
	for _, part := range strings.Fields(Normalize(composer)) {
		composerParts[part] = struct{}{}
	}

	var tokens []string
	for _, token := range strings.Fields(Normalize(query)) {
		if len(token) < 2 {
			continue
		}
		if _, ok := stopWords[token]; ok {
			continue
		}
		if _, ok := composerParts[token]; ok {
			continue
		}
		tokens = append(tokens, token)
		if len(tokens) == maxQueryTokens {
			break
		}
	}
	return tokens
}

// Score rates how well a sanitized track matches the query context: +4 for
// the full composer name in the track text, +2 for the last name only, +1
// per query token found, +0.3 for archive-hosted records as a reliability
// tie-break. Non-negative, deterministic.
func Score(track entity.Track, context Context) float64 {
	text := Normalize(track.Composer + " " + track.Title)
	if text == "" {
		return 0
	}

	var score float64
	if composer := Normalize(context.Composer); composer != "" {
		if strings.Contains(text, composer) {
			score += 4
		} else if lastName := lastField(composer); lastName != "" && strings.Contains(text, lastName) {
			score += 2
		}
	}

	for _, token := range context.Tokens {
		if strings.Contains(text, token) {
			score++
		}
	}

	if track.Provider == entity.ProviderArchive {
		score += 0.3
	}
	return score
}
