package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/arunsworld/nursery"

	"gramophone/agent"
	"gramophone/classical"
	"gramophone/entity"
	"gramophone/provider"
	"gramophone/util"
)

// Outcome tells the caller which of the three terminal states a request
// reached.
type Outcome string

const (
	OutcomeMatch        Outcome = "classical-match"
	OutcomeNonClassical Outcome = "non-classical"
	OutcomeNotFound     Outcome = "not-found"
)

// ErrNoUtterance rejects transcripts without a single user message.
var ErrNoUtterance = errors.New("no user utterance to search for")

// Result is one finished aggregation round.
type Result struct {
	Outcome    Outcome
	Query      string
	Composer   string
	Suggestion string
	Reply      string
	Tracks     []entity.Track
}

// Options tunes a round. Zero values fall back to working defaults.
type Options struct {
	// PoolBudget stops issuing candidate queries once this many sanitized
	// tracks have been pooled.
	PoolBudget int
	// AcceptLimit caps how many tracks a round may return.
	AcceptLimit int
	// ComposerThreshold is the minimum score when a composer is known,
	// OpenThreshold when one is not.
	ComposerThreshold float64
	OpenThreshold     float64
	// Status, when set, receives progress lines.
	Status func(format string, arguments ...interface{})
}

// Aggregator fans candidate queries out to every provider and distills
// the pooled records into a ranked, deduplicated track list.
type Aggregator struct {
	hinter    *agent.Client
	providers []provider.Provider
	options   Options
}

func New(hinter *agent.Client, providers []provider.Provider, options Options) *Aggregator {
	if options.PoolBudget <= 0 {
		options.PoolBudget = 80
	}
	if options.AcceptLimit <= 0 {
		options.AcceptLimit = 10
	}
	if options.ComposerThreshold <= 0 {
		options.ComposerThreshold = 1.9
	}
	if options.OpenThreshold <= 0 {
		options.OpenThreshold = 1.2
	}
	return &Aggregator{hinter: hinter, providers: providers, options: options}
}

// Ask runs one aggregation round over a chat transcript. The hint model
// and the providers may all fail without failing the round; the only
// error condition is a transcript with nothing to search for.
func (aggregator *Aggregator) Ask(ctx context.Context, history []agent.Message) (Result, error) {
	lastUser := lastUserMessage(history)
	if lastUser == "" {
		return Result{}, ErrNoUtterance
	}

	hint, err := aggregator.hinter.Complete(ctx, history)
	if err != nil {
		aggregator.status("hint model unavailable: %s", err)
		hint = agent.Hint{}
	}

	expansion := classical.Expand(hint.SearchQuery, hint.ComposerHint, lastUser)
	queryText := util.First(hint.SearchQuery, lastUser)

	if !classical.IsClassicalIntent(lastUser + " " + hint.SearchQuery) {
		return Result{
			Outcome: OutcomeNonClassical,
			Query:   queryText,
			Reply:   util.First(hint.Reply, "That does not sound like a classical piece I can look for."),
		}, nil
	}

	pool := aggregator.pool(ctx, expansion)

	unique := classical.Dedupe(pool)
	matched := make([]entity.Track, 0, len(unique))
	for _, track := range unique {
		if matchesComposer(track, expansion.Composer) {
			matched = append(matched, track)
		}
	}

	scoring := classical.Context{
		Composer: expansion.Composer,
		Tokens:   classical.TokenizeQuery(queryText, expansion.Composer),
	}
	tracks := aggregator.rank(matched, scoring)

	if len(tracks) == 0 {
		result := Result{
			Outcome:  OutcomeNotFound,
			Query:    util.First(queryText, "your request"),
			Composer: expansion.Composer,
			Reply:    fmt.Sprintf("I could not find a free recording for %q.", util.First(queryText, "your request")),
		}
		if expansion.Composer == "" {
			result.Suggestion = classical.Closest(queryText)
		}
		return result, nil
	}

	return Result{
		Outcome:  OutcomeMatch,
		Query:    queryText,
		Composer: expansion.Composer,
		Reply:    util.First(hint.Reply, fmt.Sprintf("Found %d recordings.", len(tracks))),
		Tracks:   tracks,
	}, nil
}

// pool issues candidate queries in order, all providers concurrently per
// query, until the sanitized pool reaches the budget.
func (aggregator *Aggregator) pool(ctx context.Context, expansion classical.Expansion) []entity.Track {
	var (
		mutex sync.Mutex
		pool  []entity.Track
	)

	for index, query := range expansion.Candidates {
		aggregator.status("query %d/%d: %s", index+1, len(expansion.Candidates), query)

		jobs := make([]nursery.ConcurrentJob, 0, len(aggregator.providers))
		for _, catalog := range aggregator.providers {
			catalog, query := catalog, query
			jobs = append(jobs, func(ctx context.Context, _ chan error) {
				for _, candidate := range catalog.Search(ctx, query, expansion.Composer) {
					track, ok := classical.Sanitize(candidate, classical.Options{})
					if !ok {
						continue
					}
					mutex.Lock()
					pool = append(pool, track)
					mutex.Unlock()
				}
			})
		}
		util.ErrSuppress(nursery.RunConcurrentlyWithContext(ctx, jobs...))

		if len(pool) >= aggregator.options.PoolBudget {
			break
		}
	}

	aggregator.status("pooled %d candidates", len(pool))
	return pool
}

// rank scores and orders the pool, applying the acceptance threshold and
// falling back to any positive score when nothing clears it.
func (aggregator *Aggregator) rank(tracks []entity.Track, scoring classical.Context) []entity.Track {
	type scored struct {
		track entity.Track
		score float64
	}

	ranked := make([]scored, 0, len(tracks))
	for _, track := range tracks {
		ranked = append(ranked, scored{track: track, score: classical.Score(track, scoring)})
	}
	sort.SliceStable(ranked, func(left, right int) bool {
		return ranked[left].score > ranked[right].score
	})

	threshold := aggregator.options.OpenThreshold
	if scoring.Composer != "" {
		threshold = aggregator.options.ComposerThreshold
	}

	var picked, fallback []entity.Track
	for _, item := range ranked {
		if item.score >= threshold && len(picked) < aggregator.options.AcceptLimit {
			picked = append(picked, item.track)
		}
		if item.score > 0 && len(fallback) < aggregator.options.AcceptLimit {
			fallback = append(fallback, item.track)
		}
	}

	if len(picked) > 0 {
		return picked
	}
	return fallback
}

// matchesComposer keeps tracks that resolve to a registry composer, and
// to the expected one when the round has a composer.
func matchesComposer(track entity.Track, composer string) bool {
	guessed := classical.Detect(track.Composer + " " + track.Title)
	if guessed == "" {
		return false
	}
	if composer == "" {
		return true
	}
	return classical.Normalize(guessed) == classical.Normalize(composer)
}

func lastUserMessage(history []agent.Message) string {
	for index := len(history) - 1; index >= 0; index-- {
		if history[index].Role == "user" {
			return history[index].Content
		}
	}
	return ""
}

func (aggregator *Aggregator) status(format string, arguments ...interface{}) {
	if aggregator.options.Status != nil {
		aggregator.options.Status(format, arguments...)
	}
}
