package agent

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	endpoint       = "https://api.groq.com/openai/v1/chat/completions"
	model          = "qwen/qwen3-32b"
	requestTimeout = 12 * time.Second
)

const systemPrompt = `You are a classical music librarian. The user asks for a recording.
Answer with a single JSON object and nothing else:
{"reply": "<one short sentence for the user>",
 "composer_hint": "<full composer name, or empty if unsure>",
 "search_query": "<concise catalog-style search query, or empty>"}
Prefer opus and catalog numbers over nicknames in search_query.`

// Message is one turn of the chat transcript sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to the hint model. A nil Client is valid and means the
// feature is disabled; Complete then returns an unstructured empty Hint.
type Client struct {
	apiKey string
	http   *http.Client
}

// New returns a ready Client, or nil when no API key is configured.
func New(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the transcript and parses whatever comes back. Transport
// and API failures surface as errors; malformed model output does not.
func (client *Client) Complete(ctx context.Context, history []Message) (Hint, error) {
	if client == nil {
		return Hint{}, nil
	}

	payload := completionRequest{
		Model:    model,
		Messages: append([]Message{{Role: "system", Content: systemPrompt}}, history...),
	}
	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return Hint{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Hint{}, err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+client.apiKey)

	response, err := client.http.Do(request)
	if err != nil {
		return Hint{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Hint{}, fmt.Errorf("agent: unexpected status %d", response.StatusCode)
	}

	var completion completionResponse
	if err := jsoniter.NewDecoder(response.Body).Decode(&completion); err != nil {
		return Hint{}, err
	}
	if len(completion.Choices) == 0 {
		return Hint{}, fmt.Errorf("agent: empty completion")
	}

	return ParseReply(completion.Choices[0].Message.Content), nil
}
