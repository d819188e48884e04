package middleware

import (
	"testing"
	"time"
)

func fakeClock(start time.Time) (*time.Time, func() time.Time) {
	now := start
	return &now, func() time.Time { return now }
}

func TestRateLimiterWindow(t *testing.T) {
	now, clock := fakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := NewRateLimiter(5, time.Minute)
	limiter.now = clock

	for i := 0; i < 5; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected, want first 5 accepted", i+1)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("6th request inside the window accepted")
	}

	// A different address has its own budget.
	if !limiter.Allow("10.0.0.2") {
		t.Error("other address rejected")
	}

	*now = now.Add(61 * time.Second)
	if !limiter.Allow("10.0.0.1") {
		t.Error("request after window expiry rejected")
	}
}

func TestRateLimiterStillLimitedBeforeExpiry(t *testing.T) {
	now, clock := fakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := NewRateLimiter(5, time.Minute)
	limiter.now = clock

	for i := 0; i < 5; i++ {
		limiter.Allow("10.0.0.1")
	}

	*now = now.Add(59 * time.Second)
	if limiter.Allow("10.0.0.1") {
		t.Error("request inside the rolling window accepted")
	}
}

func TestRateLimiterSweepsExpiredEntries(t *testing.T) {
	now, clock := fakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	limiter := NewRateLimiter(5, time.Minute)
	limiter.now = clock

	for i := 0; i < 20; i++ {
		limiter.Allow(string(rune('a' + i)))
	}
	if len(limiter.entries) != 20 {
		t.Fatalf("entries = %d, want 20", len(limiter.entries))
	}

	*now = now.Add(2 * time.Minute)
	// A new window triggers the lazy sweep.
	limiter.Allow("fresh")
	if len(limiter.entries) != 1 {
		t.Errorf("entries = %d after sweep, want 1", len(limiter.entries))
	}
}
