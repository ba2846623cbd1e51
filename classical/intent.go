package classical

import "regexp"

var classicalVocabulary = regexp.MustCompile(
	`(?i)\b(op\.?|opus|no\.?|sonata|etude|nocturne|prelude|waltz|ballade|scherzo|mazurka|polonaise|symphony|concerto|requiem|fugue|dumka)\b`)

// IsClassicalIntent judges whether an utterance is asking for classical
// music at all: a known composer or recognizable classical vocabulary.
func IsClassicalIntent(text string) bool {
	return Detect(text) != "" || classicalVocabulary.MatchString(text)
}
