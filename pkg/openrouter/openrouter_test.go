package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cortex-workspace/pkg/openrouter"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) openrouter.IOpenRouter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := openrouter.New(openrouter.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Referer: "https://cortex-ai-workspace.com",
		Title:   "Cortex AI Workspace",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestChatCompletion_AttributionHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("HTTP-Referer"); got != "https://cortex-ai-workspace.com" {
			t.Errorf("HTTP-Referer = %q", got)
		}
		if got := r.Header.Get("X-Title"); got != "Cortex AI Workspace" {
			t.Errorf("X-Title = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		json.NewEncoder(w).Encode(openrouter.Response{
			Choices: []openrouter.Choice{
				{Message: openrouter.Message{Role: "assistant", Content: "hi"}, FinishReason: "stop"},
			},
		})
	})

	resp, err := client.ChatCompletion(context.Background(), &openrouter.Request{
		Model:    "openai/gpt-5",
		Messages: []openrouter.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if resp.Choices[0].Message.Content != "hi" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}
}

func TestChatCompletion_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "rate limited"}}`))
	})

	_, err := client.ChatCompletion(context.Background(), &openrouter.Request{Model: "openai/gpt-5"})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error should carry the API message, got %v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := openrouter.New(openrouter.Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
