package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lead-qualification-assistant/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request id and stores it on the request
// context so every log line carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// AccessLog writes one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		default:
			m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, path, status, time.Since(start))
		}
	}
}
