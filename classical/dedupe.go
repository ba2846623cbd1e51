package classical

import "gramophone/entity"

// Dedupe collapses tracks that normalize to the same (composer, title)
// signature. On collision the record from the higher-priority provider wins;
// ties keep the first-seen entry. Relative first-seen order is preserved, a
// higher-priority replacement takes over the original slot.
func Dedupe(tracks []entity.Track) []entity.Track {
	type slot struct {
		index    int
		priority int
	}

	seen := make(map[string]slot, len(tracks))
	out := make([]entity.Track, 0, len(tracks))

	for _, track := range tracks {
		var (
			signature = Normalize(track.Composer) + "|" + Normalize(track.Title)
			priority  = providerPriority(track.Provider)
		)

		existing, ok := seen[signature]
		if !ok {
			seen[signature] = slot{index: len(out), priority: priority}
			out = append(out, track)
			continue
		}
		if priority > existing.priority {
			out[existing.index] = track
			seen[signature] = slot{index: existing.index, priority: priority}
		}
	}
	return out
}

// Bulk archive items are usually rips of consistent quality, general Commons
// search results less so.
func providerPriority(provider string) int {
	if provider == entity.ProviderArchive {
		return 2
	}
	return 1
}
