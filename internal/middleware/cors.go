package middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured browser origins. "*" opens the API to any origin
// and disables credentials.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		MaxAge:        m.cors.MaxAge,
	}

	if len(m.cors.AllowOrigins) == 0 || slices.Contains(m.cors.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.cors.AllowOrigins
		cfg.AllowCredentials = m.cors.AllowCredentials
	}

	return cors.New(cfg)
}
