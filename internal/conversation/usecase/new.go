package usecase

import (
	"context"
	"sync"
	"time"

	"lead-qualification-assistant/internal/conversation"
	"lead-qualification-assistant/internal/conversation/repository"
	"lead-qualification-assistant/internal/metrics"
	"lead-qualification-assistant/internal/model"
	"lead-qualification-assistant/pkg/llmprovider"
	"lead-qualification-assistant/pkg/log"
)

// Generator produces completions. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the chat flow.
type Config struct {
	MinReplyDelay           time.Duration
	MaxReplyDelay           time.Duration
	ClassificationThreshold int
	Temperature             float64
	MaxTokens               int
}

// session is the active conversation. Guarded by implUseCase.mu.
type session struct {
	id             string
	lead           model.LeadInfo
	messages       []model.Message
	classification model.Classification
	state          model.ConversationState
	resumedFrom    string
}

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	llm     Generator
	metrics *metrics.Metrics
	cfg     Config

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	active session
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates a new conversation UseCase implementation.
func New(l log.Logger, repo repository.Repository, llm Generator, m *metrics.Metrics, cfg Config) *implUseCase {
	if cfg.ClassificationThreshold <= 0 {
		cfg.ClassificationThreshold = defaultClassificationThreshold
	}
	if cfg.MaxReplyDelay < cfg.MinReplyDelay {
		cfg.MaxReplyDelay = cfg.MinReplyDelay
	}

	uc := &implUseCase{
		l:       l,
		repo:    repo,
		llm:     llm,
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
		sleep:   sleepContext,
	}
	uc.active = uc.newSession()
	return uc
}
