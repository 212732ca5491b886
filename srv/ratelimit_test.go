package srv

import (
	"testing"
	"time"
)

func TestBucket_BasicAllow(t *testing.T) {
	tb := newBucket(RateLimitConfig{Rate: 10, Burst: 3})
	// Should allow up to burst
	for i := 0; i < 3; i++ {
		if !tb.take() {
			t.Fatalf("expected allow on request %d", i)
		}
	}
	// 4th should be denied
	if tb.take() {
		t.Fatal("expected deny after burst exhausted")
	}
}

func TestBucket_Refill(t *testing.T) {
	tb := newBucket(RateLimitConfig{Rate: 10, Burst: 3})
	// Exhaust
	for i := 0; i < 3; i++ {
		tb.take()
	}
	// Wait for refill (100ms = 1 token at 10/sec)
	time.Sleep(150 * time.Millisecond)
	if !tb.take() {
		t.Fatal("expected allow after refill")
	}
}

func TestConnectionRateLimiter_AllowNormal(t *testing.T) {
	rl := NewConnectionRateLimiter()
	// Normal usage should be allowed
	for i := 0; i < 5; i++ {
		allowed, disconnect := rl.Allow("autocomplete")
		if !allowed {
			t.Fatalf("expected allow on request %d", i)
		}
		if disconnect {
			t.Fatal("unexpected disconnect")
		}
	}
}

func TestConnectionRateLimiter_PerTypeLimit(t *testing.T) {
	rl := NewConnectionRateLimiter()
	// check: burst=3, so 4th should be denied
	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("check")
		if !allowed {
			t.Fatalf("expected allow on check %d", i)
		}
	}
	allowed, _ := rl.Allow("check")
	if allowed {
		t.Fatal("expected deny on check after burst")
	}
	// Other types keep their own buckets.
	if allowed, _ := rl.Allow("draft"); !allowed {
		t.Fatal("expected draft to be allowed")
	}
}

func TestConnectionRateLimiter_GlobalLimit(t *testing.T) {
	rl := NewConnectionRateLimiter()
	// Global burst is 30: 20 drafts, 8 autocompletes and 2 pings use it up
	// while the ping bucket still holds 3 tokens.
	send := func(msgType string, n int) {
		for i := 0; i < n; i++ {
			if allowed, _ := rl.Allow(msgType); !allowed {
				t.Fatalf("expected allow on %s %d", msgType, i)
			}
		}
	}
	send("draft", 20)
	send("autocomplete", 8)
	send("ping", 2)
	if allowed, _ := rl.Allow("ping"); allowed {
		t.Fatal("expected global rate limit to kick in")
	}
}

func TestConnectionRateLimiter_DisconnectOnExcessiveViolations(t *testing.T) {
	rl := NewConnectionRateLimiter()
	// Exhaust per-type burst first
	for i := 0; i < 3; i++ {
		rl.Allow("check")
	}
	// Now spam to accumulate violations
	disconnected := false
	for i := 0; i < 100; i++ {
		_, shouldDisconnect := rl.Allow("check")
		if shouldDisconnect {
			disconnected = true
			break
		}
	}
	if !disconnected {
		t.Fatal("expected disconnect after excessive violations")
	}
}

func TestConnectionRateLimiter_UnknownType(t *testing.T) {
	rl := NewConnectionRateLimiter()
	// Unknown types get strict default (burst=2)
	allowed1, _ := rl.Allow("unknown_type")
	allowed2, _ := rl.Allow("unknown_type")
	allowed3, _ := rl.Allow("unknown_type")
	if !allowed1 || !allowed2 {
		t.Fatal("expected first 2 unknown type messages to be allowed")
	}
	if allowed3 {
		t.Fatal("expected 3rd unknown type message to be denied")
	}
}
