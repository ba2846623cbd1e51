package classical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramophone/entity"
)

func TestSanitize(t *testing.T) {
	track, ok := Sanitize(entity.Candidate{
		ID:         "42",
		Title:      "File:Chopin_-_Etude_Op.10_No.3.ogg",
		Composer:   "<a href=\"#\">Some Uploader</a>",
		URL:        "https://upload.wikimedia.org/chopin-etude.ogg",
		SourcePage: "https://commons.wikimedia.org/wiki/File:...",
		Provider:   entity.ProviderCommons,
	}, Options{})
	require.True(t, ok)

	assert.Equal(t, "Frederic Chopin", track.Composer)
	assert.Equal(t, "Etude Op. 10 No. 3", track.Title)
	assert.True(t, track.FeaturedComposer)
	assert.Equal(t, entity.ProviderCommons, track.Provider)
}

func TestSanitizeMissingFields(t *testing.T) {
	_, ok := Sanitize(entity.Candidate{Title: "Etude"}, Options{})
	assert.False(t, ok)

	_, ok = Sanitize(entity.Candidate{URL: "https://example.org/a.mp3"}, Options{})
	assert.False(t, ok)
}

func TestSanitizeRejectsRelativeURL(t *testing.T) {
	_, ok := Sanitize(entity.Candidate{
		Title: "Nocturne in E-flat major",
		URL:   "/download/nocturne.mp3",
	}, Options{})
	assert.False(t, ok)
}

func TestSanitizeGarbageTitle(t *testing.T) {
	_, ok := Sanitize(entity.Candidate{
		Title: "track3.mp3",
		URL:   "https://example.org/track3.mp3",
	}, Options{})
	assert.False(t, ok)
}

func TestSanitizeRequireKnownComposer(t *testing.T) {
	candidate := entity.Candidate{
		Title:    "Some Waltz Nobody Attributed",
		Composer: "Anonymous Uploader",
		URL:      "https://example.org/waltz.mp3",
	}

	_, ok := Sanitize(candidate, Options{RequireKnownComposer: true})
	assert.False(t, ok)

	track, ok := Sanitize(candidate, Options{})
	require.True(t, ok)
	assert.Equal(t, "Anonymous Uploader", track.Composer)
	assert.False(t, track.FeaturedComposer)
}

func TestSanitizePlaceholderComposer(t *testing.T) {
	track, ok := Sanitize(entity.Candidate{
		Title: "Pavane Pour Une Infante",
		URL:   "https://example.org/pavane.mp3",
	}, Options{})
	require.True(t, ok)
	assert.Equal(t, PlaceholderComposer, track.Composer)
}
