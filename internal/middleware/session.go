package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-chat-service/internal/model"
)

const (
	// SessionCookie carries the conversation session id between requests.
	SessionCookie = "chat_session"

	// SessionHeader lets cookie-less clients pin a session explicitly.
	SessionHeader = "X-Session-ID"

	scopeKey = "scope"

	sessionCookieMaxAge = 24 * 60 * 60
)

// Session resolves the caller's session id and stores a model.Scope in the
// gin context. Resolution order: cookie, then header, then a freshly issued
// id which is also set as a cookie on the response.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = c.GetHeader(SessionHeader)
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(scopeKey, model.Scope{SessionID: sessionID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by the Session middleware.
// Routes that skip the middleware get a zero scope.
func ScopeFromContext(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}

	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
