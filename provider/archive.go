package provider

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"gramophone/classical"
	"gramophone/entity"
	"gramophone/ratelimit"
	"gramophone/util"
)

const (
	archiveSearchAPI   = "https://archive.org/advancedsearch.php"
	archiveMetadataAPI = "https://archive.org/metadata/"
	archiveDownload    = "https://archive.org/download/"
	archiveDetails     = "https://archive.org/details/"
)

// skipMarker drops low-bitrate derivatives and teaser files that shadow
// the actual recording within an item.
var skipMarker = regexp.MustCompile(`(?i)_64kb|_vbr|sample|preview`)

// extensionPriority ranks playable formats, preferring lossy formats
// browsers stream without a transcode.
var extensionPriority = map[string]int{
	".mp3": 5, ".m4a": 4, ".ogg": 3, ".oga": 3, ".opus": 3, ".flac": 2, ".wav": 1,
}

// Archive searches the Internet Archive audio collections.
type Archive struct {
	client
	searchBase   string
	metadataBase string
	limit        int
}

func NewArchive(timeout time.Duration, limiter *ratelimit.Bucket, limit int) *Archive {
	if limit <= 0 {
		limit = 10
	}
	return &Archive{
		client:       newClient(timeout, limiter),
		searchBase:   archiveSearchAPI,
		metadataBase: archiveMetadataAPI,
		limit:        limit,
	}
}

func (archive *Archive) Name() string {
	return entity.ProviderArchive
}

// flexString absorbs metadata fields the API serves either as a string
// or as an array of strings.
type flexString string

func (value *flexString) UnmarshalJSON(data []byte) error {
	var single string
	if err := jsoniter.Unmarshal(data, &single); err == nil {
		*value = flexString(single)
		return nil
	}

	var many []string
	if err := jsoniter.Unmarshal(data, &many); err == nil && len(many) > 0 {
		*value = flexString(many[0])
	}
	return nil
}

type archiveDoc struct {
	Identifier string     `json:"identifier"`
	Title      flexString `json:"title"`
	Creator    flexString `json:"creator"`
}

type archiveFile struct {
	Name    string     `json:"name"`
	Title   flexString `json:"title"`
	Creator flexString `json:"creator"`
}

type archiveItem struct {
	Files    []archiveFile `json:"files"`
	Metadata struct {
		Creator    flexString `json:"creator"`
		LicenseURL flexString `json:"licenseurl"`
	} `json:"metadata"`
}

func (archive *Archive) Search(ctx context.Context, query, composerHint string) []entity.Candidate {
	docs := archive.searchDocs(ctx, query, composerHint)
	if len(docs) == 0 {
		return nil
	}

	slots := make([]*entity.Candidate, len(docs))
	group, groupCtx := errgroup.WithContext(ctx)
	for index, doc := range docs {
		index, doc := index, doc
		group.Go(func() error {
			slots[index] = archive.resolve(groupCtx, doc, composerHint)
			return nil
		})
	}
	util.ErrSuppress(group.Wait())

	var candidates []entity.Candidate
	for _, slot := range slots {
		if slot != nil {
			candidates = append(candidates, *slot)
		}
	}
	return candidates
}

// Files lists the playable files of a single item, one per recording.
func (archive *Archive) Files(ctx context.Context, identifier string) []entity.Candidate {
	item, ok := archive.metadata(ctx, identifier)
	if !ok {
		return nil
	}

	var candidates []entity.Candidate
	for _, file := range bestPerStem(item.Files) {
		candidates = append(candidates, archive.candidate(identifier, file, item, ""))
	}
	return candidates
}

func (archive *Archive) searchDocs(ctx context.Context, query, composerHint string) []archiveDoc {
	composerPart := ""
	if token := lastNameToken(composerHint); token != "" {
		composerPart = fmt.Sprintf(" OR creator:(%s) OR description:(%s)", token, token)
	}

	var payload struct {
		Response struct {
			Docs []archiveDoc `json:"docs"`
		} `json:"response"`
	}
	if !archive.getJSON(ctx, endpoint(archive.searchBase, url.Values{
		"q": {fmt.Sprintf("mediatype:audio AND (title:(%s) OR subject:(%s) OR description:(%s)%s)",
			query, query, query, composerPart)},
		"fl":     {"identifier,title,creator"},
		"rows":   {strconv.Itoa(archive.limit)},
		"page":   {"1"},
		"output": {"json"},
	}), &payload) {
		return nil
	}

	docs := payload.Response.Docs
	if len(docs) > archive.limit {
		docs = docs[:archive.limit]
	}
	return docs
}

// resolve picks the item's best playable file, nil when there is none.
func (archive *Archive) resolve(ctx context.Context, doc archiveDoc, composerHint string) *entity.Candidate {
	item, ok := archive.metadata(ctx, doc.Identifier)
	if !ok {
		return nil
	}

	files := bestPerStem(item.Files)
	if len(files) == 0 {
		return nil
	}

	selected := files[0]
	for _, file := range files[1:] {
		if priority(file.Name) > priority(selected.Name) {
			selected = file
		}
	}

	candidate := archive.candidate(doc.Identifier, selected, item, composerHint)
	if candidate.Composer == "" || candidate.Composer == composerHint {
		candidate.Composer = util.First(string(doc.Creator), string(item.Metadata.Creator), composerHint)
	}
	return &candidate
}

func (archive *Archive) metadata(ctx context.Context, identifier string) (archiveItem, bool) {
	var item archiveItem
	ok := archive.getJSON(ctx, archive.metadataBase+identifier, &item)
	return item, ok
}

func (archive *Archive) candidate(identifier string, file archiveFile, item archiveItem, composerHint string) entity.Candidate {
	return entity.Candidate{
		ID:         identifier + ":" + file.Name,
		Title:      util.First(string(file.Title), classical.CleanArchiveFileName(file.Name), file.Name),
		Composer:   util.First(string(file.Creator), string(item.Metadata.Creator), composerHint),
		URL:        archiveDownload + identifier + "/" + escapePath(file.Name),
		SourcePage: archiveDetails + identifier,
		License:    string(item.Metadata.LicenseURL),
		Provider:   entity.ProviderArchive,
	}
}

// bestPerStem keeps one file per recording: items usually carry the same
// take in several formats and bitrates under a shared name stem.
func bestPerStem(files []archiveFile) []archiveFile {
	type slot struct {
		index int
		file  archiveFile
	}

	var (
		order []string
		slots = map[string]slot{}
	)
	for _, file := range files {
		if !audioExtension.MatchString(file.Name) || skipMarker.MatchString(file.Name) {
			continue
		}

		stem := strings.ToLower(strings.TrimSuffix(file.Name, extension(file.Name)))
		existing, ok := slots[stem]
		if !ok {
			slots[stem] = slot{index: len(order), file: file}
			order = append(order, stem)
			continue
		}
		if priority(file.Name) > priority(existing.file.Name) {
			slots[stem] = slot{index: existing.index, file: file}
		}
	}

	selected := make([]archiveFile, len(order))
	for _, slot := range slots {
		selected[slot.index] = slot.file
	}
	return selected
}

func extension(name string) string {
	if index := strings.LastIndex(name, "."); index >= 0 {
		return name[index:]
	}
	return ""
}

func priority(name string) int {
	return extensionPriority[strings.ToLower(extension(name))]
}

func lastNameToken(composer string) string {
	fields := strings.Fields(classical.Normalize(composer))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
