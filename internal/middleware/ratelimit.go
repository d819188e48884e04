package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jarodreyes/prize-survey/internal/metrics"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// RateLimiter is an injected, process-local sliding-window limiter keyed by
// client address. Enforcement is advisory: under concurrent requests from
// one address the count may race, which is acceptable for abuse deterrence.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	now     func() time.Time
	entries map[string]*windowEntry
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// Allow records one request from addr and reports whether it falls inside
// the window budget. Expired entries are swept lazily when a new window
// opens.
func (l *RateLimiter) Allow(addr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[addr]
	if !ok || now.After(entry.resetAt) {
		l.sweep(now)
		l.entries[addr] = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	if entry.count >= l.max {
		return false
	}
	entry.count++
	return true
}

func (l *RateLimiter) sweep(now time.Time) {
	for addr, entry := range l.entries {
		if now.After(entry.resetAt) {
			delete(l.entries, addr)
		}
	}
}

func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			metrics.SubmissionsRejected.WithLabelValues("rate_limited").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
