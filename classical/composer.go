package classical

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Profile maps a canonical composer name to its known alias spellings and
// transliterations, plus seed queries worth trying when only the composer is
// known. Aliases include catalog-number prefixes (bwv, kv, rv, hob) since
// those alone identify the composer.
type Profile struct {
	Composer    string
	Aliases     []string
	SeedQueries []string
}

// Profiles is the static composer registry, loaded once and read-only.
// Order matters: on overlapping alias matches the first listed profile wins.
var Profiles = []Profile{
	{
		Composer:    "Frederic Chopin",
		Aliases:     []string{"chopin", "frederic chopin", "f chopin", "f. chopin"},
		SeedQueries: []string{"chopin piano", "chopin etude", "chopin nocturne"},
	},
	{
		Composer:    "Sergei Rachmaninoff",
		Aliases:     []string{"rachmaninoff", "rachmaninov", "sergei rachmaninoff", "sergey rachmaninov"},
		SeedQueries: []string{"rachmaninoff prelude", "rachmaninov piano"},
	},
	{
		Composer:    "Claude Debussy",
		Aliases:     []string{"debussy", "claude debussy"},
		SeedQueries: []string{"debussy piano", "debussy suite bergamasque"},
	},
	{
		Composer:    "Erik Satie",
		Aliases:     []string{"satie", "erik satie", "gymnopedie", "gnossienne"},
		SeedQueries: []string{"erik satie piano", "gymnopedie"},
	},
	{
		Composer:    "Johann Sebastian Bach",
		Aliases:     []string{"bach", "johann sebastian bach", "j s bach", "js bach", "bwv"},
		SeedQueries: []string{"bach prelude fugue", "bach partita"},
	},
	{
		Composer:    "Ludwig van Beethoven",
		Aliases:     []string{"beethoven", "ludwig van beethoven", "woo"},
		SeedQueries: []string{"beethoven piano sonata", "beethoven symphony"},
	},
	{
		Composer:    "Wolfgang Amadeus Mozart",
		Aliases:     []string{"mozart", "wolfgang amadeus mozart", "kv", "k."},
		SeedQueries: []string{"mozart sonata", "mozart concerto"},
	},
	{
		Composer:    "Pyotr Ilyich Tchaikovsky",
		Aliases:     []string{"tchaikovsky", "chaikovsky", "pyotr ilyich tchaikovsky", "chaykovskiy"},
		SeedQueries: []string{"tchaikovsky orchestra", "tchaikovsky ballet"},
	},
	{
		Composer:    "Johannes Brahms",
		Aliases:     []string{"brahms", "johannes brahms"},
		SeedQueries: []string{"brahms intermezzo", "brahms sonata"},
	},
	{
		Composer:    "Robert Schumann",
		Aliases:     []string{"schumann", "robert schumann"},
		SeedQueries: []string{"schumann piano", "schumann kinderszenen"},
	},
	{
		Composer:    "Franz Schubert",
		Aliases:     []string{"schubert", "franz schubert"},
		SeedQueries: []string{"schubert impromptu", "schubert sonata"},
	},
	{
		Composer:    "Franz Liszt",
		Aliases:     []string{"liszt", "franz liszt"},
		SeedQueries: []string{"liszt etude", "liszt liebestraum"},
	},
	{
		Composer:    "Antonio Vivaldi",
		Aliases:     []string{"vivaldi", "antonio vivaldi", "rv"},
		SeedQueries: []string{"vivaldi concerto", "vivaldi four seasons"},
	},
	{
		Composer:    "George Frideric Handel",
		Aliases:     []string{"handel", "george frideric handel"},
		SeedQueries: []string{"handel suite", "handel clavier"},
	},
	{
		Composer:    "Joseph Haydn",
		Aliases:     []string{"haydn", "joseph haydn", "hob"},
		SeedQueries: []string{"haydn sonata", "haydn quartet"},
	},
	{
		Composer:    "Maurice Ravel",
		Aliases:     []string{"ravel", "maurice ravel"},
		SeedQueries: []string{"ravel piano", "ravel pavane"},
	},
}

// Detect matches free text against the registry aliases and returns the
// canonical composer name, or "" when nothing matches. Aliases match only as
// whole words so that e.g. "bach" cannot hit inside an unrelated longer word.
func Detect(text string) string {
	normalized := Normalize(text)
	if normalized == "" {
		return ""
	}

	for _, profile := range Profiles {
		for _, alias := range profile.Aliases {
			term := Normalize(alias)
			if term == "" {
				continue
			}
			if containsWord(normalized, term) {
				return profile.Composer
			}
		}
	}
	return ""
}

// Closest returns the canonical composer whose alias sits nearest to any
// token of the text, for "did you mean" hints when a search comes up empty.
// Distances above 2 are noise and yield "".
func Closest(text string) string {
	var (
		best         string
		bestDistance = 3
	)
	for _, token := range strings.Fields(Normalize(text)) {
		if len(token) < 4 {
			continue
		}
		for _, profile := range Profiles {
			for _, alias := range profile.Aliases {
				term := Normalize(alias)
				if len(term) < 4 || strings.Contains(term, " ") {
					continue
				}
				if distance := levenshtein.ComputeDistance(token, term); distance < bestDistance {
					best, bestDistance = profile.Composer, distance
				}
			}
		}
	}
	return best
}
