package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lead-qualification-assistant/config"
	_ "lead-qualification-assistant/docs" // Swagger docs
	"lead-qualification-assistant/internal/conversation/repository/memory"
	"lead-qualification-assistant/internal/conversation/usecase"
	"lead-qualification-assistant/internal/httpserver"
	"lead-qualification-assistant/internal/metrics"
	"lead-qualification-assistant/internal/middleware"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/llmprovider"
	"lead-qualification-assistant/pkg/log"
)

// @title       Lead Qualification Assistant API
// @description Conversational lead qualification with Gemini, history and exports.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Lead Qualification Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New(nil)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	defer closeProviders(providers)

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 5. Conversation domain
	repo := memory.New(logger, memory.Options{
		MaxEntries: cfg.History.MaxEntries,
		Retention:  cfg.History.Retention,
		Profile: model.BusinessProfile{
			BusinessName:  cfg.Profile.BusinessName,
			Industry:      cfg.Profile.Industry,
			Location:      cfg.Profile.Location,
			AgentName:     cfg.Profile.AgentName,
			ResponseStyle: cfg.Profile.ResponseStyle,
		},
		Rules: model.ClassificationRules{
			HotCriteria:     cfg.Rules.HotCriteria,
			ColdCriteria:    cfg.Rules.ColdCriteria,
			InvalidCriteria: cfg.Rules.InvalidCriteria,
		},
	})

	convUC := usecase.New(logger, repo, llm, m, usecase.Config{
		MinReplyDelay:           cfg.Conversation.MinReplyDelay,
		MaxReplyDelay:           cfg.Conversation.MaxReplyDelay,
		ClassificationThreshold: cfg.Conversation.ClassificationThreshold,
		Temperature:             cfg.Conversation.Temperature,
		MaxTokens:               cfg.Conversation.MaxTokens,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.CORS, cfg.RateLimit),
		Metrics:        m,
		ConversationUC: convUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

// closeProviders releases SDK-backed clients.
func closeProviders(providers []llmprovider.Provider) {
	for _, p := range providers {
		if c, ok := p.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	}
}
