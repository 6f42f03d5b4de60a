package http

import (
	"lead-qualification-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that call the LLM sit behind the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conv := rg.Group("/conversation")
	{
		conv.GET("", h.GetConversation)
		conv.POST("/messages", mw.RateLimit(), h.SendMessage)
		conv.PUT("/lead", h.UpdateLead)
		conv.POST("/classify", mw.RateLimit(), h.Classify)
		conv.POST("/clear", h.Clear)
		conv.GET("/export", h.ExportConversation)
	}

	history := rg.Group("/history")
	{
		history.GET("", h.ListHistory)
		history.GET("/:id", h.GetHistory)
		history.DELETE("/:id", h.DeleteHistory)
		history.POST("/:id/load", h.LoadHistory)
		history.GET("/:id/export", h.ExportHistory)
	}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/rules", h.GetRules)
		profile.PUT("/rules", h.UpdateRules)
	}
}
