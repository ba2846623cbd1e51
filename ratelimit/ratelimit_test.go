package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketDrains(t *testing.T) {
	bucket := NewBucket(3, 0)
	bucket.now = func() time.Time { return time.Unix(0, 0) }

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestBucketRefills(t *testing.T) {
	clock := time.Unix(0, 0)
	bucket := NewBucket(1, 2)
	bucket.now = func() time.Time { return clock }

	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	clock = clock.Add(500 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func TestBucketNeverExceedsCapacity(t *testing.T) {
	clock := time.Unix(0, 0)
	bucket := NewBucket(2, 100)
	bucket.now = func() time.Time { return clock }

	assert.True(t, bucket.Allow())
	clock = clock.Add(time.Hour)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}
