package gemini

import (
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GenerateRequest is the top-level request body for Gemini API.
type GenerateRequest struct {
	SystemInstruction *Content          `json:"system_instruction,omitempty"`
	Contents          []Content         `json:"contents"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the top-level response body from Gemini API.
type GenerateResponse struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// UsageMetadata reports token usage for a generation call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Text returns the first text part of the first candidate.
func (r *GenerateResponse) Text() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
