package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"lead-qualification-assistant/config"
	"lead-qualification-assistant/pkg/gemini"
	"lead-qualification-assistant/pkg/log"
	"lead-qualification-assistant/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p, l)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "%s", errMsg)
			continue
		}

		if cfg.CircuitBreaker.Enabled {
			provider = WithCircuitBreaker(provider, BreakerSettings{
				MaxRequests:  cfg.CircuitBreaker.MaxRequests,
				Interval:     cfg.CircuitBreaker.Interval,
				Timeout:      cfg.CircuitBreaker.Timeout,
				MinRequests:  cfg.CircuitBreaker.MinRequests,
				FailureRatio: cfg.CircuitBreaker.FailureRatio,
			}, l)
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "%d provider(s) failed to initialize but continuing with %d working provider(s)",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig, l log.Logger) (Provider, error) {
	switch cfg.Name {
	case "gemini":
		// The REST client is created without a key too; every call then
		// fails with gemini.ErrMissingAPIKey and the chat shows the error message.
		if cfg.APIKey == "" {
			l.Warnf(ctx, "provider gemini has no API key configured")
		}
		client := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		return NewGeminiAdapter(client), nil

	case "gemini-sdk", "genai":
		return NewGenAIAdapter(ctx, cfg.APIKey, cfg.Model)

	case "qwen":
		var httpClient *http.Client
		if cfg.Timeout > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewQwenAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
