package classical

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxCandidateQueries bounds how many search strings one request expands to.
const MaxCandidateQueries = 14

var (
	fillerTerms   = regexp.MustCompile(`(?i)\b(public domain|pd|royalty free)\b`)
	opusPattern   = regexp.MustCompile(`\b(?:op|opus)\s*(\d{1,3})\b`)
	numberPattern = regexp.MustCompile(`\b(?:no|n)\s*(\d{1,3})\b`)
	punctToSpace  = strings.NewReplacer(",", " ", ".", " ")
)

// catalogAmbiguities patches specific catalog entries that plain op/no
// queries are known to miss. This is a narrow exception table, not general
// logic: each entry names one composer/opus/number combination and the extra
// queries that disambiguate it.
var catalogAmbiguities = []struct {
	composer string
	term     string
	opus     string
	number   string
	queries  []string
}{
	{
		composer: "tchaikovsky",
		term:     "dumka",
		opus:     "72",
		number:   "10",
		queries: []string{
			"tchaikovsky 18 pieces op 72 no 10",
			"tchaikovsky op 72 no 10 piano",
			"pyotr ilyich tchaikovsky op 72 no 10",
		},
	},
}

// Expansion is the result of turning one utterance, plus whatever the agent
// hinted, into catalog search strings.
type Expansion struct {
	Composer   string
	Candidates []string
}

// CleanQuery strips licensing filler phrases users tack onto requests.
func CleanQuery(value string) string {
	return collapse(fillerTerms.ReplaceAllString(value, " "))
}

// ExtractOpusNumber pulls an opus number and a piece number out of free
// text. First match wins; absence yields empty strings.
func ExtractOpusNumber(value string) (opus, number string) {
	normalized := Normalize(value)
	if match := opusPattern.FindStringSubmatch(normalized); match != nil {
		opus = match[1]
	}
	if match := numberPattern.FindStringSubmatch(normalized); match != nil {
		number = match[1]
	}
	return opus, number
}

// Expand builds the ordered, de-duplicated candidate query set for one
// request: each seed verbatim, punctuation-stripped, composer-prefixed when
// the composer is not already present, plus canonical op/no phrasings when
// those were resolved. Capped at MaxCandidateQueries.
func Expand(searchQuery, composerHint, lastUser string) Expansion {
	composer := Detect(strings.Join([]string{composerHint, searchQuery, lastUser}, " "))

	var seeds []string
	for _, value := range []string{searchQuery, lastUser} {
		if strings.TrimSpace(value) == "" {
			continue
		}
		seeds = append(seeds, CleanQuery(value))
	}
	opus, number := ExtractOpusNumber(strings.Join(seeds, " "))

	candidates := newOrderedSet()
	composerNorm := Normalize(composer)
	for _, seed := range seeds {
		candidates.add(seed)
		candidates.add(collapse(punctToSpace.Replace(seed)))

		if composer != "" && !containsWord(Normalize(seed), composerNorm) {
			candidates.add(composer + " " + seed)
		}
	}

	if composer != "" && opus != "" {
		candidates.add(fmt.Sprintf("%s op %s", composer, opus))
		candidates.add(fmt.Sprintf("%s opus %s", composer, opus))
		if number != "" {
			candidates.add(fmt.Sprintf("%s op %s no %s", composer, opus, number))
			candidates.add(fmt.Sprintf("%s opus %s no %s", composer, opus, number))
			candidates.add(fmt.Sprintf("%s op.%s no.%s", composer, opus, number))
		}
	}

	combined := Normalize(strings.Join(seeds, " "))
	for _, patch := range catalogAmbiguities {
		if opus == patch.opus && number == patch.number &&
			strings.Contains(combined, patch.composer) && strings.Contains(combined, patch.term) {
			for _, query := range patch.queries {
				candidates.add(query)
			}
		}
	}

	return Expansion{Composer: composer, Candidates: candidates.values(MaxCandidateQueries)}
}

// orderedSet keeps insertion order, skipping blanks and duplicates.
type orderedSet struct {
	seen map[string]struct{}
	list []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}}
}

func (s *orderedSet) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.list = append(s.list, value)
}

func (s *orderedSet) values(limit int) []string {
	if len(s.list) > limit {
		return s.list[:limit]
	}
	return s.list
}
