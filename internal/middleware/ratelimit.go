package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugmood/hugmood/backend/internal/apierror"
	"github.com/hugmood/hugmood/backend/internal/logger"
)

// RateLimiter provides request rate limiting per client IP
type RateLimiter struct {
	requests map[string]*clientInfo
	mu       sync.Mutex
	rate     int           // requests per window
	window   time.Duration // time window
	name     string        // identifier for logging
}

type clientInfo struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// NewRateLimiter creates a new rate limiter.
// rate: maximum requests allowed per window; name: identifier for logging.
func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*clientInfo),
		rate:     rate,
		window:   window,
		name:     name,
	}

	// Janitor goroutine keeps the per-IP map from growing without bound
	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, info := range rl.requests {
			if now.Sub(info.lastSeen) > rl.window*2 {
				delete(rl.requests, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// isAllowed checks whether a request from the given IP may proceed and
// returns the seconds until the window resets when it may not
func (rl *RateLimiter) isAllowed(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, ok := rl.requests[ip]
	if !ok || now.Sub(info.windowStart) >= rl.window {
		rl.requests[ip] = &clientInfo{count: 1, windowStart: now, lastSeen: now}
		return true, 0
	}

	info.lastSeen = now
	if info.count >= rl.rate {
		retryAfter := int(rl.window.Seconds() - now.Sub(info.windowStart).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}

	info.count++
	return true, 0
}

// Middleware returns the gin handler enforcing this limiter
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed, retryAfter := rl.isAllowed(ip)
		if !allowed {
			logger.Ctx(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", rl.name),
				logger.String("ip", ip),
			)
			apierror.WriteProblem(c, apierror.NewRateLimitError(apierror.GetRequestID(c), retryAfter))
			c.Abort()
			return
		}

		c.Next()
	}
}
