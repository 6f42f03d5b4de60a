package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Chat sends a chat completion request. An empty req.Model uses the client model.
func (q *qwenImpl) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = q.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		var errResp errorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			msg = errResp.Error.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrEmptyChoices
	}

	return &out, nil
}

func (q *qwenImpl) Model() string {
	return q.model
}
