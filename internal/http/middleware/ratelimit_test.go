package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("request over the limit should be rejected")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("a different address has its own window")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	current := time.Now()
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return current }

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("second request in the same window should be rejected")
	}

	current = current.Add(time.Minute + time.Second)
	if !rl.Allow("10.0.0.1") {
		t.Fatalf("request after the window should be allowed again")
	}
}
