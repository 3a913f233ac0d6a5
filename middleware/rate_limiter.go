package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"smartresume/metrics"
	"smartresume/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimitMessage is the error returned once a client exhausts its window.
const RateLimitMessage = "Too many requests, please try again later."

// WindowStore counts hits per key in fixed windows. Increment returns the hit count
// including this one and the time left until the key's window resets.
type WindowStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type fixedWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryWindowStore keeps windows in process memory. Expired windows are swept lazily.
type MemoryWindowStore struct {
	mu        sync.Mutex
	windows   map[string]*fixedWindow
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryWindowStore returns an empty store; a nil clock means time.Now.
func NewMemoryWindowStore(now func() time.Time) *MemoryWindowStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryWindowStore{
		windows: make(map[string]*fixedWindow),
		now:     now,
	}
}

func (s *MemoryWindowStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= window {
		for k, w := range s.windows {
			if !now.Before(w.resetAt) {
				delete(s.windows, k)
			}
		}
		s.lastSweep = now
	}

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &fixedWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// RateLimitMiddleware allows max requests per client IP in each window. The key is
// gin's ClientIP, so forwarded headers only count behind a trusted proxy. Store
// errors let the request through.
func RateLimitMiddleware(store WindowStore, max int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	limit := strconv.Itoa(max)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		count, ttl, err := store.Increment(c.Request.Context(), ip, window)
		if err != nil {
			logger.Warn("Rate limit store unavailable, allowing request", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		remaining := int64(max) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

		if count > int64(max) {
			retryAfter := int(math.Ceil(ttl.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			metrics.IncRateLimited()
			logger.Warn("Rate limit exceeded", zap.String("ip", ip), zap.Int64("count", count))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{Error: RateLimitMessage})
			return
		}
		c.Next()
	}
}
