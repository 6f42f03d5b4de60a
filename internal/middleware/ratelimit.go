package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"lead-qualification-assistant/config"
	"lead-qualification-assistant/pkg/response"
)

const (
	defaultMaxClients = 10000
	limiterTTL        = 10 * time.Minute
)

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	if cfg.RequestsPerMin <= 0 {
		return nil
	}

	size := cfg.MaxClients
	if size <= 0 {
		size = defaultMaxClients
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = max(cfg.RequestsPerMin/10, 1)
	}

	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, limiterTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects clients that exceed their request budget with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", ip, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
