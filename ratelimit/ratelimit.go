package ratelimit

import (
	"sync"
	"time"
)

// Bucket is a token bucket refilled at a fixed rate. Allow never blocks;
// callers that are out of tokens are expected to skip the request.
type Bucket struct {
	mutex    sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	last     time.Time
	now      func() time.Time
}

// NewBucket returns a full bucket holding capacity tokens, refilled at
// rate tokens per second.
func NewBucket(capacity int, rate float64) *Bucket {
	return &Bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		rate:     rate,
		now:      time.Now,
	}
}

// Allow consumes one token if available.
func (bucket *Bucket) Allow() bool {
	bucket.mutex.Lock()
	defer bucket.mutex.Unlock()

	bucket.refill()
	if bucket.tokens < 1 {
		return false
	}
	bucket.tokens--
	return true
}

func (bucket *Bucket) refill() {
	now := bucket.now()
	if !bucket.last.IsZero() {
		bucket.tokens += now.Sub(bucket.last).Seconds() * bucket.rate
		if bucket.tokens > bucket.capacity {
			bucket.tokens = bucket.capacity
		}
	}
	bucket.last = now
}
