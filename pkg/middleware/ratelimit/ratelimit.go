// Package ratelimit throttles requests per client IP with token buckets.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	appErrors "github.com/noah-isme/sma-schedule-api/pkg/errors"
	"github.com/noah-isme/sma-schedule-api/pkg/response"
)

const defaultIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// IPRateLimiter manages per-IP rate limiters. Limiters idle for longer than
// the idle TTL are dropped by Prune.
type IPRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with
// the given burst for each client IP.
func NewIPRateLimiter(rps float64, burst int, idleTTL time.Duration, logger *zap.Logger) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IPRateLimiter{rate: rate.Limit(rps), burst: burst, idleTTL: idleTTL, logger: logger, now: time.Now}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	var client *clientLimiter
	if existing, ok := l.limiters.Load(ip); ok {
		client = existing.(*clientLimiter)
	} else {
		actual, _ := l.limiters.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)})
		client = actual.(*clientLimiter)
	}
	client.lastSeen.Store(l.now().UnixNano())
	return client.limiter
}

// Prune drops limiters of clients not seen within the idle TTL.
func (l *IPRateLimiter) Prune(ctx context.Context) error {
	cutoff := l.now().Add(-l.idleTTL).UnixNano()
	removed := 0
	l.limiters.Range(func(key, value interface{}) bool {
		if value.(*clientLimiter).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
			removed++
		}
		return ctx.Err() == nil
	})
	if removed > 0 {
		l.logger.Debug("idle rate limiters pruned", zap.Int("removed", removed))
	}
	return ctx.Err()
}

// Len returns the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	n := 0
	l.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Allow reports whether ip may make another request now.
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.limiter(ip).Allow()
}

// Middleware rejects requests over the limit with 429.
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.Allow(ip) {
			l.logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			if l.rate > 0 {
				c.Header("Retry-After", fmt.Sprintf("%d", int(math.Ceil(1/float64(l.rate)))))
			}
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
