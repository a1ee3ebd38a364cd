package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"intent-chat-service/pkg/response"
)

// RateLimit enforces a per-session token bucket. Must run after Session so
// the key is the session id; unscoped requests fall back to the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ScopeFromContext(c).SessionID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.perMin)/60.0), m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for session %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
