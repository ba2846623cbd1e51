package provider

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"gramophone/entity"
	"gramophone/ratelimit"
	"gramophone/util"
)

const (
	commonsAPI       = "https://commons.wikimedia.org/w/api.php"
	commonsChunkSize = 25
)

// languagePrefix catches per-language uploads like File:en-pronunciation,
// which are speech rather than music.
var languagePrefix = regexp.MustCompile(`(?i)^File:[a-z]{2,3}-`)

// Commons searches audio files hosted on Wikimedia Commons.
type Commons struct {
	client
	base  string
	limit int
}

func NewCommons(timeout time.Duration, limiter *ratelimit.Bucket, limit int) *Commons {
	if limit <= 0 {
		limit = 28
	}
	return &Commons{
		client: newClient(timeout, limiter),
		base:   commonsAPI,
		limit:  limit,
	}
}

func (commons *Commons) Name() string {
	return entity.ProviderCommons
}

func (commons *Commons) Search(ctx context.Context, query, composerHint string) []entity.Candidate {
	return commons.Describe(ctx, commons.searchTitles(ctx, query), composerHint)
}

// Category lists the audio files of a Commons category, for browsing
// curated collections rather than free-text search.
func (commons *Commons) Category(ctx context.Context, name string) []entity.Candidate {
	if !strings.HasPrefix(name, "Category:") {
		name = "Category:" + name
	}

	var payload struct {
		Query struct {
			CategoryMembers []struct {
				Title string `json:"title"`
			} `json:"categorymembers"`
		} `json:"query"`
	}
	if !commons.getJSON(ctx, endpoint(commons.base, url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"list":          {"categorymembers"},
		"cmtitle":       {name},
		"cmtype":        {"file"},
		"cmlimit":       {strconv.Itoa(commons.limit)},
	}), &payload) {
		return nil
	}

	var titles []string
	for _, member := range payload.Query.CategoryMembers {
		if acceptableTitle(member.Title) {
			titles = append(titles, member.Title)
		}
	}
	return commons.Describe(ctx, titles, "")
}

func (commons *Commons) searchTitles(ctx context.Context, query string) []string {
	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if !commons.getJSON(ctx, endpoint(commons.base, url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"list":          {"search"},
		"srsearch":      {query},
		"srnamespace":   {"6"},
		"srlimit":       {strconv.Itoa(commons.limit)},
	}), &payload) {
		return nil
	}

	var titles []string
	for _, result := range payload.Query.Search {
		if acceptableTitle(result.Title) {
			titles = append(titles, result.Title)
		}
	}
	return titles
}

// acceptableTitle keeps musical audio files and drops the spoken-word
// noise the file namespace is full of.
func acceptableTitle(title string) bool {
	if !audioExtension.MatchString(title) {
		return false
	}
	if languagePrefix.MatchString(title) {
		return false
	}
	lowered := strings.ToLower(title)
	return !strings.Contains(lowered, "pronunciation") &&
		!strings.Contains(lowered, "spoken wikipedia")
}

// Describe resolves file titles to download URLs and attribution, batching
// lookups since the API caps titles per request.
func (commons *Commons) Describe(ctx context.Context, titles []string, composerHint string) []entity.Candidate {
	if len(titles) == 0 {
		return nil
	}

	var (
		mutex      sync.Mutex
		candidates []entity.Candidate
	)
	group, groupCtx := errgroup.WithContext(ctx)
	for _, chunk := range util.Chunk(titles, commonsChunkSize) {
		chunk := chunk
		group.Go(func() error {
			described := commons.fileInfo(groupCtx, chunk, composerHint)
			mutex.Lock()
			candidates = append(candidates, described...)
			mutex.Unlock()
			return nil
		})
	}
	util.ErrSuppress(group.Wait())
	return candidates
}

type metadataValue struct {
	Value string `json:"value"`
}

func (commons *Commons) fileInfo(ctx context.Context, titles []string, composerHint string) []entity.Candidate {
	var payload struct {
		Query struct {
			Pages []struct {
				PageID    int64  `json:"pageid"`
				Title     string `json:"title"`
				FullURL   string `json:"fullurl"`
				ImageInfo []struct {
					URL         string `json:"url"`
					ExtMetadata struct {
						Artist           metadataValue `json:"Artist"`
						LicenseShortName metadataValue `json:"LicenseShortName"`
						Attribution      metadataValue `json:"Attribution"`
					} `json:"extmetadata"`
				} `json:"imageinfo"`
			} `json:"pages"`
		} `json:"query"`
	}
	if !commons.getJSON(ctx, endpoint(commons.base, url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"titles":        {strings.Join(titles, "|")},
		"prop":          {"imageinfo|info"},
		"inprop":        {"url"},
		"iiprop":        {"url|mime|mediatype|extmetadata"},
	}), &payload) {
		return nil
	}

	var candidates []entity.Candidate
	for _, page := range payload.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}

		media := page.ImageInfo[0]
		if !audioExtension.MatchString(media.URL) {
			continue
		}

		candidates = append(candidates, entity.Candidate{
			ID:          strconv.FormatInt(page.PageID, 10),
			Title:       page.Title,
			Composer:    util.First(stripMarkup(media.ExtMetadata.Artist.Value), composerHint),
			URL:         media.URL,
			SourcePage:  page.FullURL,
			License:     stripMarkup(media.ExtMetadata.LicenseShortName.Value),
			Attribution: stripMarkup(media.ExtMetadata.Attribution.Value),
			Provider:    entity.ProviderCommons,
		})
	}
	return candidates
}

// stripMarkup flattens the HTML the extmetadata fields tend to carry.
func stripMarkup(value string) string {
	if !strings.Contains(value, "<") {
		return strings.Join(strings.Fields(value), " ")
	}

	document, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return strings.Join(strings.Fields(value), " ")
	}
	return strings.Join(strings.Fields(document.Text()), " ")
}
