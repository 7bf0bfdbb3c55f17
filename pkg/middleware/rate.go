// Package middleware provides the HTTP middleware stack for the shop API.
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// limiter counts requests per client over a fixed window. Expired entries are
// swept lazily on the next request instead of by a background goroutine, so a
// limiter costs nothing once traffic stops.
type limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*windowCount
	sweepAt time.Time
}

type windowCount struct {
	n     int
	until time.Time
}

func newLimiter(max int, window time.Duration) *limiter {
	return &limiter{
		max:     max,
		window:  window,
		clients: make(map[string]*windowCount),
		sweepAt: time.Now().Add(window),
	}
}

func (l *limiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.sweepAt) {
		for k, c := range l.clients {
			if now.After(c.until) {
				delete(l.clients, k)
			}
		}
		l.sweepAt = now.Add(l.window)
	}

	c := l.clients[key]
	if c == nil || now.After(c.until) {
		l.clients[key] = &windowCount{n: 1, until: now.Add(l.window)}
		return true
	}

	c.n++
	return c.n <= l.max
}

// clientIP extracts the caller's address, trusting the first hop of
// X-Forwarded-For when a proxy set it.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns a middleware that allows each client IP at most max
// requests per window and answers 429 beyond that.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	l := newLimiter(max, window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.allow(clientIP(r), time.Now()) {
				w.Header().Set("Retry-After", window.String())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"status":429,"message":"Too Many Requests"}`)) //nolint:errcheck
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
