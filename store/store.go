package store

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	jsoniter "github.com/json-iterator/go"
	"github.com/thanhpk/randstr"

	"gramophone/classical"
	"gramophone/entity"
)

const (
	capacity = 1500
	dataFile = "gramophone/library.json"
)

// ErrRejected marks tracks that did not pass the classical quality filter.
var ErrRejected = errors.New("track did not pass the classical quality filter")

// Entry is a saved track, newest first on disk.
type Entry struct {
	entity.Track
	AddedAt time.Time `json:"addedAt"`
}

// Store persists the personal library as a single JSON file.
type Store struct {
	mutex sync.Mutex
	path  string
}

// Open locates the library in the user data directory, creating parent
// directories as needed.
func Open() (*Store, error) {
	path, err := xdg.DataFile(dataFile)
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// At opens a library at an explicit path.
func At(path string) *Store {
	return &Store{path: path}
}

// Add gates the track through sanitization and saves it. Tracks without a
// recognized composer are rejected; an URL already on file is a no-op.
func (store *Store) Add(track entity.Track) (Entry, error) {
	cleaned, ok := resanitize(track)
	if !ok {
		return Entry{}, ErrRejected
	}

	store.mutex.Lock()
	defer store.mutex.Unlock()

	entries, err := store.load()
	if err != nil {
		return Entry{}, err
	}

	for _, entry := range entries {
		if entry.URL == cleaned.URL {
			return entry, nil
		}
	}

	cleaned.ID = randstr.Hex(8)
	entry := Entry{Track: cleaned, AddedAt: time.Now()}
	entries = append([]Entry{entry}, entries...)
	if len(entries) > capacity {
		entries = entries[:capacity]
	}
	return entry, store.save(entries)
}

// List returns saved tracks, newest first. Every entry is re-gated on the
// way out so that entries saved under older cleaning rules get cleaned up,
// or pruned, retroactively.
func (store *Store) List() ([]Entry, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	entries, err := store.load()
	if err != nil {
		return nil, err
	}

	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		cleaned, ok := resanitize(entry.Track)
		if !ok {
			continue
		}
		cleaned.ID = entry.ID
		kept = append(kept, Entry{Track: cleaned, AddedAt: entry.AddedAt})
	}

	if len(kept) < len(entries) {
		if err := store.save(kept); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

// Remove drops the entry with the given URL, if present.
func (store *Store) Remove(url string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	entries, err := store.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.URL != url {
			kept = append(kept, entry)
		}
	}
	return store.save(kept)
}

func resanitize(track entity.Track) (entity.Track, bool) {
	cleaned, ok := classical.Sanitize(entity.Candidate{
		ID:          track.ID,
		Title:       track.Title,
		Composer:    track.Composer,
		URL:         track.URL,
		SourcePage:  track.SourcePage,
		License:     track.License,
		Attribution: track.Attribution,
		Provider:    track.Provider,
	}, classical.Options{RequireKnownComposer: true})
	return cleaned, ok
}

// load reads the library file; a missing or corrupted file is an empty
// library, not an error.
func (store *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(store.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := jsoniter.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

func (store *Store) save(entries []Entry) error {
	data, err := jsoniter.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(store.path, data, 0o600)
}
