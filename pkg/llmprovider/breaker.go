package llmprovider

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"lead-qualification-assistant/pkg/gemini"
	"lead-qualification-assistant/pkg/log"
)

var errBreakerOpen = errors.New("circuit breaker open")

// BreakerSettings configures the circuit breaker placed in front of a provider.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

type breakerProvider struct {
	Provider
	cb *gobreaker.CircuitBreaker
}

// WithCircuitBreaker guards p with a gobreaker circuit breaker. While the
// breaker is open calls fail immediately so the manager can fall back.
func WithCircuitBreaker(p Provider, s BreakerSettings, l log.Logger) Provider {
	if s.MinRequests == 0 {
		s.MinRequests = 3
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = 0.6
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= s.MinRequests && failureRatio >= s.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
		// A missing key or a caller hanging up says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, gemini.ErrMissingAPIKey) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &breakerProvider{Provider: p, cb: cb}
}

func (b *breakerProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.Provider.GenerateContent(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Join(errBreakerOpen, err)
		}
		return nil, err
	}
	return result.(*Response), nil
}

// Close releases the wrapped provider when it holds a client.
func (b *breakerProvider) Close() error {
	if c, ok := b.Provider.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
