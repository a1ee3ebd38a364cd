package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "intent-chat-service/internal/chat/delivery/http"
	"intent-chat-service/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler (the usecase is wired in main and injected via Config)
	h := chatHTTP.New(srv.l, srv.chatUC)

	// 2. Routes: registers /api/v1/chat/messages and /api/v1/chat/history
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
