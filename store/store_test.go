package store

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramophone/entity"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return At(filepath.Join(t.TempDir(), "library.json"))
}

func chopinTrack(url string) entity.Track {
	return entity.Track{
		Title:    "Etude Op. 10 No. 3",
		Composer: "Frederic Chopin",
		URL:      url,
		Provider: entity.ProviderCommons,
	}
}

func TestAddAndList(t *testing.T) {
	store := testStore(t)

	entry, err := store.Add(chopinTrack("https://upload.wikimedia.org/etude.ogg"))
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.True(t, entry.FeaturedComposer)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Etude Op. 10 No. 3", entries[0].Title)
}

func TestAddDeduplicatesByURL(t *testing.T) {
	store := testStore(t)

	first, err := store.Add(chopinTrack("https://upload.wikimedia.org/etude.ogg"))
	require.NoError(t, err)
	second, err := store.Add(chopinTrack("https://upload.wikimedia.org/etude.ogg"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	entries, err := store.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddNewestFirst(t *testing.T) {
	store := testStore(t)

	_, err := store.Add(chopinTrack("https://upload.wikimedia.org/first.ogg"))
	require.NoError(t, err)
	_, err = store.Add(chopinTrack("https://upload.wikimedia.org/second.ogg"))
	require.NoError(t, err)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "https://upload.wikimedia.org/second.ogg", entries[0].URL)
}

func TestAddRejectsUnknownComposer(t *testing.T) {
	store := testStore(t)

	_, err := store.Add(entity.Track{
		Title:    "Some Waltz Nobody Attributed",
		Composer: "Anonymous Uploader",
		URL:      "https://example.org/waltz.mp3",
	})
	assert.ErrorIs(t, err, ErrRejected)
}

func TestListPrunesStaleEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	stale := []Entry{
		{Track: chopinTrack("https://upload.wikimedia.org/etude.ogg")},
		{Track: entity.Track{
			Title:    "Random Podcast Episode",
			Composer: "Somebody",
			URL:      "https://example.org/episode.mp3",
		}},
	}
	data, err := jsoniter.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store := At(path)
	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Frederic Chopin", entries[0].Composer)

	// the prune is persisted
	reloaded, err := store.load()
	require.NoError(t, err)
	assert.Len(t, reloaded, 1)
}

func TestRemove(t *testing.T) {
	store := testStore(t)

	_, err := store.Add(chopinTrack("https://upload.wikimedia.org/etude.ogg"))
	require.NoError(t, err)
	require.NoError(t, store.Remove("https://upload.wikimedia.org/etude.ogg"))

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	entries, err := At(path).List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
