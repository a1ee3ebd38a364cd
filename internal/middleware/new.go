package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"intent-chat-service/pkg/log"
)

const (
	// DefaultRateLimitPerMin caps how many messages one session can send per minute.
	DefaultRateLimitPerMin = 60

	// limiterTableSize bounds the number of tracked sessions; idle entries
	// expire after limiterTTL anyway.
	limiterTableSize = 4096
	limiterTTL       = 10 * time.Minute
)

// Middleware bundles the cross-cutting gin middlewares for the chat API.
type Middleware struct {
	l        log.Logger
	perMin   int
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware set. rateLimitPerMin <= 0 falls back to the default.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	if rateLimitPerMin <= 0 {
		rateLimitPerMin = DefaultRateLimitPerMin
	}

	burst := rateLimitPerMin / 6
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:        l,
		perMin:   rateLimitPerMin,
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterTableSize, nil, limiterTTL),
	}
}
