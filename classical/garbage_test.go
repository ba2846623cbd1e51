package classical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGarbage(t *testing.T) {
	garbage := []string{
		"",
		"3",
		"ab",
		"track3",
		"Track 12",
		"audio7",
		"unknown piece",
		"sample recording",
		"preview clip",
		"a123",
		"123456",
		"ab12",
		"-_ .",
		"12 34 5678",                      // digits outnumber letters, no catalog keyword
		"averylongfilenamestemwithoutspaces", // single token over 28 chars
	}
	for _, title := range garbage {
		assert.True(t, IsGarbage(title), title)
	}

	legitimate := []string{
		"Nocturne in E-flat major",
		"Etude Op. 25 No. 5",
		"BWV 846 848 850 852",
		"Moonlight Sonata",
	}
	for _, title := range legitimate {
		assert.False(t, IsGarbage(title), title)
	}
}
