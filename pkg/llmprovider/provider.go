package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "gemini-sdk")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles understood by every provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string
	Parts []Part
}

// Part represents a text part of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// NewTextRequest builds a single-turn request carrying prompt as the user message.
func NewTextRequest(prompt string) *Request {
	return &Request{
		Messages: []Message{{Role: RoleUser, Parts: []Part{{Text: prompt}}}},
	}
}

// Text joins the text parts of the response content.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
