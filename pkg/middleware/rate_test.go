package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rateReq(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	h := RateLimit(3, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, rateReq("10.0.0.1:1234"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, rateReq("10.0.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client has its own window.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, rateReq("10.0.0.2:1234"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := rateReq("10.0.0.9:5555")
	require.Equal(t, "10.0.0.9", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal(t, "203.0.113.7", clientIP(req))
}

func TestLimiterWindowExpires(t *testing.T) {
	l := newLimiter(1, time.Minute)
	now := time.Now()

	require.True(t, l.allow("a", now))
	require.False(t, l.allow("a", now))
	require.True(t, l.allow("a", now.Add(2*time.Minute)), "fresh window after expiry")
}
