package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is the Gemini Generative Language API client.
// It is safe for concurrent use.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Gemini API client with the given API key and defaults.
func NewClient(apiKey string) *Client {
	return New(Config{APIKey: apiKey})
}

// New creates a client from cfg, filling unset fields with defaults.
// A missing API key is not an error here; calls fail with ErrMissingAPIKey.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// SetAPIURL overrides the API base URL (used by tests).
func (c *Client) SetAPIURL(url string) {
	c.apiURL = strings.TrimRight(url, "/")
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// GenerateText sends a single-turn prompt and returns the first candidate's text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	text, ok := resp.Text()
	if !ok {
		return "", ErrInvalidResponse
	}
	return text, nil
}

// errorMessage pulls error.message out of an API error body, falling back
// to the raw body.
func errorMessage(raw []byte) string {
	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	if len(raw) == 0 {
		return "Unknown error"
	}
	return string(raw)
}
