package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lead-qualification-assistant/pkg/gemini"
	"lead-qualification-assistant/pkg/log"
	"lead-qualification-assistant/pkg/qwen"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic.
// Every failure is reported as ErrGenerationFailed wrapping the underlying cause.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, ErrNoProvidersConfigured)
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, ErrInvalidRequest)
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded after trying %d provider(s): %w",
				ErrGenerationFailed, i, ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w: %w", ErrGenerationFailed, ErrAllProvidersFailed, lastErr)
}

// GenerateText is a single-turn convenience wrapper around GenerateContent.
func (m *Manager) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, NewTextRequest(prompt))
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			if resp.Text() == "" {
				lastErr = ErrEmptyResponse
				continue
			}
			return resp, nil
		}

		lastErr = err
		if isPermanent(err) {
			break
		}
	}

	return nil, lastErr
}

// isPermanent reports errors that a retry cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, gemini.ErrMissingAPIKey) ||
		errors.Is(err, qwen.ErrMissingAPIKey) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, errBreakerOpen)
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
