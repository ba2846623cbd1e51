package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gramophone/entity"
)

func archiveServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/advancedsearch.php", func(writer http.ResponseWriter, request *http.Request) {
		query := request.URL.Query().Get("q")
		assert.Contains(t, query, "mediatype:audio")
		assert.Contains(t, query, "creator:(chopin)")
		fmt.Fprint(writer, `{"response":{"docs":[
			{"identifier":"chopin-etudes-1928", "title":"Chopin Etudes", "creator":["Frederic Chopin"]}]}}`)
	})
	mux.HandleFunc("/metadata/", func(writer http.ResponseWriter, request *http.Request) {
		assert.True(t, strings.HasSuffix(request.URL.Path, "chopin-etudes-1928"))
		fmt.Fprint(writer, `{
			"files": [
				{"name": "01 etude.flac"},
				{"name": "01 etude.mp3"},
				{"name": "01 etude_64kb.mp3"},
				{"name": "02 nocturne.ogg", "title": "Nocturne Op. 9 No. 2"},
				{"name": "cover.jpg"}
			],
			"metadata": {"creator": "Frederic Chopin", "licenseurl": "https://creativecommons.org/publicdomain/zero/1.0/"}
		}`)
	})
	return httptest.NewServer(mux)
}

func testArchive(server *httptest.Server) *Archive {
	archive := NewArchive(time.Second, nil, 10)
	archive.searchBase = server.URL + "/advancedsearch.php"
	archive.metadataBase = server.URL + "/metadata/"
	return archive
}

func TestArchiveSearch(t *testing.T) {
	server := archiveServer(t)
	defer server.Close()

	candidates := testArchive(server).Search(context.Background(), "chopin etude", "Frederic Chopin")
	require.Len(t, candidates, 1)

	candidate := candidates[0]
	assert.Equal(t, "chopin-etudes-1928:01 etude.mp3", candidate.ID)
	assert.Equal(t, "Frederic Chopin", candidate.Composer)
	assert.Equal(t, "https://archive.org/download/chopin-etudes-1928/01%20etude.mp3", candidate.URL)
	assert.Equal(t, "https://archive.org/details/chopin-etudes-1928", candidate.SourcePage)
	assert.Equal(t, "https://creativecommons.org/publicdomain/zero/1.0/", candidate.License)
	assert.Equal(t, entity.ProviderArchive, candidate.Provider)
}

func TestArchiveFiles(t *testing.T) {
	server := archiveServer(t)
	defer server.Close()

	candidates := testArchive(server).Files(context.Background(), "chopin-etudes-1928")
	require.Len(t, candidates, 2)
	assert.Equal(t, "chopin-etudes-1928:01 etude.mp3", candidates[0].ID)
	assert.Equal(t, "Nocturne Op. 9 No. 2", candidates[1].Title)
}

func TestArchiveSearchSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	assert.Empty(t, testArchive(server).Search(context.Background(), "chopin", ""))
}

func TestBestPerStem(t *testing.T) {
	selected := bestPerStem([]archiveFile{
		{Name: "take.wav"},
		{Name: "take.mp3"},
		{Name: "take_vbr.mp3"},
		{Name: "other.flac"},
		{Name: "notes.txt"},
	})

	require.Len(t, selected, 2)
	assert.Equal(t, "take.mp3", selected[0].Name)
	assert.Equal(t, "other.flac", selected[1].Name)
}

func TestLastNameToken(t *testing.T) {
	assert.Equal(t, "rachmaninoff", lastNameToken("Sergei Rachmaninoff"))
	assert.Empty(t, lastNameToken(""))
}
