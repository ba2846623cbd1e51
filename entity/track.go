package entity

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Track is a candidate recording that passed the classical quality gate:
// cleaned title, non-empty composer, absolute audio URL.
type Track struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Composer         string `json:"composer"`
	URL              string `json:"url"`
	SourcePage       string `json:"sourcePage,omitempty"`
	License          string `json:"license,omitempty"`
	Attribution      string `json:"attribution,omitempty"`
	Provider         string `json:"provider,omitempty"`
	FeaturedComposer bool   `json:"featuredComposer,omitempty"`
}

// Slug derives a stable, key-friendly identifier from composer and title.
func (track Track) Slug() string {
	return slug.Make(track.Composer + " " + track.Title)
}

func (track Track) String() string {
	return fmt.Sprintf("%s - %s", track.Composer, track.Title)
}
