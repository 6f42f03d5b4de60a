package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/metrics"
	"lead-qualification-assistant/internal/middleware"
	"lead-qualification-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Shared
	mw      middleware.Middleware
	metrics *metrics.Metrics

	// Conversation domain
	conversationUC conversation.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware
	Metrics    *metrics.Metrics

	ConversationUC conversation.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		metrics:         cfg.Metrics,
		conversationUC:  cfg.ConversationUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation usecase is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
