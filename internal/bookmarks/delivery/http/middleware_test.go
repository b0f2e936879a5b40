package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRateLimiter_WithinBurst_AllowsRequests verifies requests under the
// limit pass through with rate headers set
func TestRateLimiter_WithinBurst_AllowsRequests(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(5)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(next)

	// Act
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

// TestRateLimiter_BurstExhausted_Returns429 verifies the limit is enforced
func TestRateLimiter_BurstExhausted_Returns429(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(next)

	send := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		handler.ServeHTTP(rec, req)
		return rec
	}

	// Act
	send()
	send()
	third := send()

	// Assert
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("X-RateLimit-Reset"))
}

// TestRateLimiter_DistinctIPs_TrackedSeparately verifies per-IP buckets
func TestRateLimiter_DistinctIPs_TrackedSeparately(t *testing.T) {
	// Arrange
	rl := NewRateLimiter(1)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := rl.Middleware(next)

	send := func(addr string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.RemoteAddr = addr
		handler.ServeHTTP(rec, req)
		return rec
	}

	// Act
	first := send("10.0.0.3:1234")
	blocked := send("10.0.0.3:1234")
	other := send("10.0.0.4:1234")

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}
