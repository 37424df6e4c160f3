package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"task-intelligence/pkg/response"
)

const (
	defaultRequestsPerMin = 120
	defaultMaxClients     = 1000
	limiterTTL            = 5 * time.Minute
)

// RateLimit rejects clients that exceed their per-minute budget with 429.
// A negative budget disables limiting; zero uses the default.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil || m.limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		m.l.Warn(c.Request.Context(), "Rate limit exceeded",
			"client", c.ClientIP(),
			"path", c.FullPath(),
		)
		response.TooManyRequests(c)
		c.Abort()
	}
}

// rateLimiter keeps one token bucket per client; idle clients expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxClients int) *rateLimiter {
	if requestsPerMin < 0 {
		return nil
	}
	if requestsPerMin == 0 {
		requestsPerMin = defaultRequestsPerMin
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
