package provider

import (
	"context"
	"regexp"

	"gramophone/entity"
)

// Provider searches one public audio catalog. Implementations swallow
// their own transport and parsing failures: a broken or slow catalog
// returns no candidates, never an error, so it cannot sink a whole
// aggregation round.
type Provider interface {
	Name() string
	Search(ctx context.Context, query, composerHint string) []entity.Candidate
}

var audioExtension = regexp.MustCompile(`(?i)\.(ogg|oga|opus|wav|flac|mp3|m4a)$`)
