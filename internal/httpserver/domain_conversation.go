package httpserver

import (
	"context"

	convHTTP "lead-qualification-assistant/internal/conversation/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupConversationDomain registers the conversation, history and profile routes.
//
// Repository and usecase are built by the caller so the active session
// outlives any single router.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := convHTTP.New(srv.l, srv.conversationUC)
	convHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
