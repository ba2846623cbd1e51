package entity

// Provider names as they appear on records. The archive catalog outranks
// general Commons search results during deduplication.
const (
	ProviderCommons = "wikimedia commons"
	ProviderArchive = "internet archive"
)

// Candidate is a raw provider record. Both catalogs return loosely
// structured metadata, so nothing about it is trusted: every field except ID
// and URL may be empty, wrong or full of markup. A Candidate only becomes a
// Track by passing classical.Sanitize.
type Candidate struct {
	ID          string
	Title       string
	Composer    string
	URL         string
	SourcePage  string
	License     string
	Attribution string
	Provider    string
}
