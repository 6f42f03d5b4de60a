package qwen

import "context"

// IQwen is a chat-completions client for the Qwen (DashScope) API.
// Implementations are safe for concurrent use.
type IQwen interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Model() string
}

// New creates a new Qwen client with the given configuration
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
