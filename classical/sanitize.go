package classical

import (
	"net/url"
	"strings"

	"gramophone/entity"
)

// PlaceholderComposer labels tracks for which no composer information exists
// at all; the composer field of a sanitized track is never empty.
const PlaceholderComposer = "Classical performer"

// Options tunes the Sanitize gate.
type Options struct {
	// RequireKnownComposer rejects candidates whose text does not resolve
	// to a registry composer.
	RequireKnownComposer bool
}

// Sanitize is the single quality gate between raw provider records and the
// rest of the pipeline. It rejects candidates missing a title or a valid
// absolute URL, resolves the composer (detection over supplied text wins
// over the raw composer field), cleans the title and drops garbage.
func Sanitize(candidate entity.Candidate, opts Options) (entity.Track, bool) {
	if candidate.URL == "" || candidate.Title == "" {
		return entity.Track{}, false
	}
	if parsed, err := url.Parse(candidate.URL); err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return entity.Track{}, false
	}

	inferred := Detect(candidate.Composer + " " + candidate.Title)
	composer := inferred
	if composer == "" {
		composer = strings.TrimSpace(candidate.Composer)
	}

	title := CleanTitle(candidate.Title, composer)
	if IsGarbage(title) {
		return entity.Track{}, false
	}
	if opts.RequireKnownComposer && inferred == "" {
		return entity.Track{}, false
	}

	if composer == "" {
		composer = PlaceholderComposer
	}

	return entity.Track{
		ID:               candidate.ID,
		Title:            title,
		Composer:         composer,
		URL:              candidate.URL,
		SourcePage:       candidate.SourcePage,
		License:          candidate.License,
		Attribution:      candidate.Attribution,
		Provider:         candidate.Provider,
		FeaturedComposer: inferred != "",
	}, true
}
