package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplyDirectJSON(t *testing.T) {
	hint := ParseReply(`{"reply": "Here you go.", "composer_hint": "Frederic Chopin", "search_query": "chopin etude op 25 no 5"}`)

	assert.True(t, hint.Structured)
	assert.Equal(t, "Here you go.", hint.Reply)
	assert.Equal(t, "Frederic Chopin", hint.ComposerHint)
	assert.Equal(t, "chopin etude op 25 no 5", hint.SearchQuery)
}

func TestParseReplyStripsReasoningAndFences(t *testing.T) {
	hint := ParseReply("<think>\nthe user wants the winter wind etude\n</think>\n```json\n{\"reply\": \"Sure.\", \"composer_hint\": \"Frederic Chopin\", \"search_query\": \"chopin op 25 no 11\"}\n```")

	assert.True(t, hint.Structured)
	assert.Equal(t, "Sure.", hint.Reply)
	assert.Equal(t, "chopin op 25 no 11", hint.SearchQuery)
}

func TestParseReplyEmbeddedJSON(t *testing.T) {
	hint := ParseReply(`Of course! {"reply": "Found it.", "composer_hint": "Erik Satie", "search_query": "satie gymnopedie"} Hope that helps.`)

	assert.True(t, hint.Structured)
	assert.Equal(t, "Erik Satie", hint.ComposerHint)
}

func TestParseReplyPlainTextFallback(t *testing.T) {
	hint := ParseReply("I could not find anything matching that request.")

	assert.False(t, hint.Structured)
	assert.Equal(t, "I could not find anything matching that request.", hint.Reply)
	assert.Empty(t, hint.ComposerHint)
	assert.Empty(t, hint.SearchQuery)
}

func TestStripReasoning(t *testing.T) {
	assert.Equal(t, "hello", StripReasoning("<think>irrelevant</think>hello"))
	assert.Equal(t, "hello", StripReasoning("```\nhello\n```"))
	assert.Equal(t, "", StripReasoning("<think>only reasoning</think>"))
}

func TestNilClientComplete(t *testing.T) {
	var client *Client
	hint, err := client.Complete(context.Background(), nil)

	assert.NoError(t, err)
	assert.False(t, hint.Structured)
}
