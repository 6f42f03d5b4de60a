package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lead-qualification-assistant/pkg/gemini"
	"lead-qualification-assistant/pkg/qwen"
)

// GeminiAdapter adapts the REST client in pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		geminiReq.Contents = append(geminiReq.Contents, gemini.Content{
			Role:  toGeminiRole(msg.Role),
			Parts: toGeminiParts(msg.Parts),
		})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, gemini.ErrInvalidResponse
	}

	content := resp.Candidates[0].Content
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// GenAIAdapter talks to Gemini through the official generative-ai-go SDK.
type GenAIAdapter struct {
	client  *genai.Client
	modelID string
}

// NewGenAIAdapter creates an SDK backed provider. Unlike the REST adapter it
// needs the key up front because the SDK client is built eagerly.
func NewGenAIAdapter(ctx context.Context, apiKey, modelID string) (*GenAIAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, gemini.ErrMissingAPIKey
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = gemini.DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GenAIAdapter{client: client, modelID: modelID}, nil
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	model := a.client.GenerativeModel(a.modelID)
	if req.Temperature > 0 {
		model.SetTemperature(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.SystemInstruction != nil {
		model.SystemInstruction = genai.NewUserContent(genai.Text(joinParts(req.SystemInstruction.Parts)))
	}

	cs := model.StartChat()
	for _, msg := range req.Messages[:len(req.Messages)-1] {
		text := strings.TrimSpace(joinParts(msg.Parts))
		if text == "" || msg.Role == RoleSystem {
			continue
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  toGeminiRole(msg.Role),
			Parts: []genai.Part{genai.Text(text)},
		})
	}

	last := req.Messages[len(req.Messages)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(joinParts(last.Parts)))
	if err != nil {
		return nil, fmt.Errorf("genai completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, gemini.ErrInvalidResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, gemini.ErrInvalidResponse
	}

	var parts []Part
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, Part{Text: string(text)})
		}
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.modelID,
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "gemini-sdk"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.modelID
}

// Close releases the SDK client.
func (a *GenAIAdapter) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}


// QwenAdapter adapts pkg/qwen to the Provider interface. It is meant as a
// fallback behind the Gemini providers.
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chat := qwen.ChatRequest{
		Messages:    make([]qwen.ChatMessage, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		chat.Messages = append(chat.Messages, qwen.ChatMessage{Role: RoleSystem, Content: joinParts(req.SystemInstruction.Parts)})
	}
	for _, msg := range req.Messages {
		role := RoleUser
		if msg.Role == RoleAssistant {
			role = RoleAssistant
		}
		chat.Messages = append(chat.Messages, qwen.ChatMessage{Role: role, Content: joinParts(msg.Parts)})
	}

	resp, err := a.client.Chat(ctx, chat)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Choices[0].Message.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}
