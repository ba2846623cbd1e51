package classical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "chopin", Normalize("Chopin"))
	assert.Equal(t, "chopin", Normalize("CHOPIN"))
	assert.Equal(t, "chopin", Normalize("Chôpin"))
	assert.Equal(t, "etude op 10 no 3", Normalize("Étude, Op.10 — No.3!"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("  ...  "))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, value := range []string{
		"Frédéric Chopin",
		"Bach - Partita No. 2 (BWV 826)",
		"  odd   spacing\tand\npunctuation?!",
		"Чайковский Думка",
	} {
		once := Normalize(value)
		assert.Equal(t, once, Normalize(once), value)
	}
}

func TestSafeDecode(t *testing.T) {
	assert.Equal(t, "Etude Op.10", SafeDecode("Etude%20Op.10"))
	// malformed sequences pass through unchanged
	assert.Equal(t, "bad%zz", SafeDecode("bad%zz"))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("bach", "bach"))
	assert.True(t, containsWord("bach partita", "bach"))
	assert.True(t, containsWord("js bach partita", "bach"))
	assert.True(t, containsWord("partita by bach", "bach"))
	assert.False(t, containsWord("offenbach overture", "bach"))
}
