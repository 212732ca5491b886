package srv

import (
	"sync"
	"time"
)

// RateLimitConfig is a refill rate (tokens per second) and a bucket size.
type RateLimitConfig struct {
	Rate  float64
	Burst int
}

// defaultRateLimits are keyed by WSMessage.Type.
var defaultRateLimits = map[string]RateLimitConfig{
	// One draft per keystroke; the debouncer collapses them into one check.
	"draft": {Rate: 10, Burst: 20},
	// A forced check runs the engine immediately.
	"check":        {Rate: 1, Burst: 3},
	"autocomplete": {Rate: 4, Burst: 8},
	"ping":         {Rate: 2, Burst: 5},
}

// unknownTypeLimit covers message types the session does not handle.
var unknownTypeLimit = RateLimitConfig{Rate: 1, Burst: 2}

// sessionRateLimit caps a session's total traffic across all types.
var sessionRateLimit = RateLimitConfig{Rate: 15, Burst: 30}

// maxViolations is the strike count at which a session is closed.
const maxViolations = 50

// bucket is a token bucket that starts full.
type bucket struct {
	tokens float64
	size   float64
	rate   float64
	last   time.Time
}

func newBucket(c RateLimitConfig) *bucket {
	return &bucket{
		tokens: float64(c.Burst),
		size:   float64(c.Burst),
		rate:   c.Rate,
		last:   time.Now(),
	}
}

// take refills by the time elapsed since the last call and spends one token.
func (b *bucket) take() bool {
	now := time.Now()
	b.tokens = min(b.size, b.tokens+now.Sub(b.last).Seconds()*b.rate)
	b.last = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// ConnectionRateLimiter throttles the messages of one live-check session. Each
// denied message is a strike and each accepted one forgives a strike.
type ConnectionRateLimiter struct {
	mu      sync.Mutex
	session *bucket
	byType  map[string]*bucket
	strikes int
}

// NewConnectionRateLimiter creates a limiter for one session.
func NewConnectionRateLimiter() *ConnectionRateLimiter {
	return &ConnectionRateLimiter{
		session: newBucket(sessionRateLimit),
		byType:  make(map[string]*bucket),
	}
}

// Allow reports whether a message of msgType may be handled, and whether the
// session has collected enough strikes to be closed.
func (rl *ConnectionRateLimiter) Allow(msgType string) (allowed, disconnect bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.byType[msgType]
	if !ok {
		c, known := defaultRateLimits[msgType]
		if !known {
			c = unknownTypeLimit
		}
		b = newBucket(c)
		rl.byType[msgType] = b
	}
	if !rl.session.take() || !b.take() {
		rl.strikes++
		return false, rl.strikes >= maxViolations
	}
	if rl.strikes > 0 {
		rl.strikes--
	}
	return true, false
}
