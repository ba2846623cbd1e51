package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrWrap(t *testing.T) {
	assert.Equal(t, "value", ErrWrap("fallback")("value", nil))
	assert.Equal(t, "fallback", ErrWrap("fallback")("value", errors.New("failure")))
}

func TestErrOnly(t *testing.T) {
	assert.Nil(t, ErrOnly("value", nil))
	assert.Error(t, ErrOnly("value", errors.New("failure")))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2}}, Chunk([]int{1, 2}, 25))
	assert.Equal(t, [][]int{{1, 2}}, Chunk([]int{1, 2}, 0))
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "b", First("", "b", "c"))
	assert.Empty(t, First("", ""))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short"))
	assert.Equal(t, "lon...", Excerpt("longer", 3))
}
