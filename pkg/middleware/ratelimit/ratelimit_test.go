package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(l *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(l.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIPRateLimiterBlocksAfterBurst(t *testing.T) {
	r := newRouter(NewIPRateLimiter(0.001, 2, 0, nil))

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.1").Code)

	rec := doRequest(r, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMITED")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, doRequest(r, "10.0.0.2").Code, "limits are per IP")
}

func TestIPRateLimiterMinimumBurst(t *testing.T) {
	l := NewIPRateLimiter(0, 0, 0, nil)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestIPRateLimiterPrunesIdleClients(t *testing.T) {
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(0.001, 1, time.Minute, nil)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	now = now.Add(45 * time.Second)
	assert.True(t, l.Allow("10.0.0.2"))
	require.Equal(t, 2, l.Len())

	now = now.Add(30 * time.Second)
	require.NoError(t, l.Prune(context.Background()))
	assert.Equal(t, 1, l.Len(), "only the client idle past the TTL is dropped")

	now = now.Add(2 * time.Minute)
	require.NoError(t, l.Prune(context.Background()))
	assert.Zero(t, l.Len())
	assert.True(t, l.Allow("10.0.0.1"), "a pruned client starts with a fresh bucket")
}
