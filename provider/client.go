package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"

	"gramophone/ratelimit"
)

const userAgent = "gramophone/1.0 (https://github.com/gramophone)"

type client struct {
	http    *http.Client
	limiter *ratelimit.Bucket
}

func newClient(timeout time.Duration, limiter *ratelimit.Bucket) client {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return client{
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// getJSON fetches and decodes a JSON document. Any failure, including an
// exhausted rate limit, reports false and leaves out untouched.
func (client client) getJSON(ctx context.Context, rawURL string, out interface{}) bool {
	if client.limiter != nil && !client.limiter.Allow() {
		return false
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := client.http.Do(request)
	if err != nil {
		return false
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return false
	}
	return jsoniter.NewDecoder(response.Body).Decode(out) == nil
}

func endpoint(base string, values url.Values) string {
	return base + "?" + values.Encode()
}

func escapePath(value string) string {
	return (&url.URL{Path: value}).EscapedPath()
}
