package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lead-qualification-assistant/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":401,"message":"API key not valid"}}`))
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_empty":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"candidates": []}`))
			return
		case "cause_garbage":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		text, err := client.GenerateText(context.Background(), "Hello world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "mocked response string" {
			t.Errorf("unexpected content response: %s", text)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_500")
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected APIError 500, got %v", err)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_empty")
		if !errors.Is(err, gemini.ErrInvalidResponse) {
			t.Fatalf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "cause_garbage")
		if !errors.Is(err, gemini.ErrInvalidResponse) {
			t.Fatalf("expected ErrInvalidResponse, got %v", err)
		}
	})

	t.Run("API error message is surfaced", func(t *testing.T) {
		c2 := gemini.NewClient("wrong-key")
		c2.SetAPIURL(ts.URL)

		_, err := c2.GenerateText(context.Background(), "hi")
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != "API key not valid" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	})
}

func TestClient_MissingAPIKeyFailsBeforeNetwork(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	client := gemini.New(gemini.Config{APIKey: "   "})
	client.SetAPIURL(ts.URL)

	_, err := client.GenerateText(context.Background(), "hello")
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no network call, got %d", calls)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := gemini.New(gemini.Config{APIKey: "k"})
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model %s, got %s", gemini.DefaultModel, c.Model())
	}
}
