package http

import (
	"github.com/gin-gonic/gin"

	"intent-chat-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// runs behind the session middleware so handlers always see a session scope.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.Session(), mw.RateLimit(), h.SendMessage)
	rg.GET("/history", mw.Session(), h.History)
}
