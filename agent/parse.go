package agent

import (
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var (
	thinkBlocks = regexp.MustCompile(`(?is)<think>.*?</think>`)
	fenceOpen   = regexp.MustCompile("(?i)^```(?:json)?[ \t]*\n?")
	fenceClose  = regexp.MustCompile("```$")
)

// Hint is what the chat model contributed to one request. Structured is
// false when the model output could not be parsed as the expected JSON
// payload; Reply then carries the cleaned text and both hint fields are
// empty. Parsing never errors, it only degrades.
type Hint struct {
	Reply        string
	ComposerHint string
	SearchQuery  string
	Structured   bool
}

type replyPayload struct {
	Reply        string `json:"reply"`
	ComposerHint string `json:"composer_hint"`
	SearchQuery  string `json:"search_query"`
}

// StripReasoning drops reasoning markup and code-fence wrapping the model
// may leak around its payload.
func StripReasoning(text string) string {
	cleaned := strings.TrimSpace(thinkBlocks.ReplaceAllString(text, ""))
	cleaned = fenceOpen.ReplaceAllString(cleaned, "")
	cleaned = fenceClose.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// ParseReply extracts the structured payload from model output. Strategy:
// direct parse first, then the region between the first '{' and the last
// '}'. Anything else degrades to a plain-text hint.
func ParseReply(text string) Hint {
	cleaned := StripReasoning(text)

	var payload replyPayload
	if err := jsoniter.UnmarshalFromString(cleaned, &payload); err == nil {
		return payload.hint()
	}

	start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		payload = replyPayload{}
		if err := jsoniter.UnmarshalFromString(cleaned[start:end+1], &payload); err == nil {
			return payload.hint()
		}
	}

	return Hint{Reply: cleaned}
}

func (payload replyPayload) hint() Hint {
	return Hint{
		Reply:        strings.TrimSpace(payload.Reply),
		ComposerHint: strings.TrimSpace(payload.ComposerHint),
		SearchQuery:  strings.TrimSpace(payload.SearchQuery),
		Structured:   true,
	}
}
