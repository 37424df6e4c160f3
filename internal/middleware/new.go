package middleware

import (
	"task-intelligence/pkg/log"
)

// Config tunes the per-client request limiter.
type Config struct {
	RequestsPerMin int
	MaxClients     int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin, cfg.MaxClients),
	}
}
