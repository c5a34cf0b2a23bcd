package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-support-router/pkg/openai"
)

func TestClient_ChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}

		var req openai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[len(req.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "REFUND_REQUEST"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 2, "total_tokens": 12}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", Model: "test-model", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: "user", Content: "refund please"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Model != "test-model" {
			t.Errorf("expected default model to be sent, got %q", resp.Model)
		}
		if resp.Choices[0].Message.Content != "REFUND_REQUEST" {
			t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 12 {
			t.Errorf("expected 12 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Auth Error Message", func(t *testing.T) {
		bad, _ := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := bad.ChatCompletion(context.Background(), openai.ChatRequest{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || err.Error() != "openai: API error 401: bad key" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	cfg := openai.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	cfg = openai.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != openai.DefaultModel || cfg.BaseURL != openai.DefaultBaseURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestBaseURLFor(t *testing.T) {
	if got := openai.BaseURLFor("deepseek"); got != "https://api.deepseek.com/v1" {
		t.Errorf("unexpected deepseek url: %s", got)
	}
	if got := openai.BaseURLFor("unknown"); got != openai.DefaultBaseURL {
		t.Errorf("expected default url, got %s", got)
	}
}
