package middleware

import (
	"lead-qualification-assistant/config"
	"lead-qualification-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New builds the shared middleware set. A zero RequestsPerMin disables rate limiting.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cors:    cors,
		limiter: newRateLimiter(rl),
	}
}
