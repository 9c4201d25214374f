package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/canvasmith/canvasmith/providers/ai"
)

func completionsServer(t *testing.T, handle func(body map[string]any) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(handle(body))
	}))
}

func TestSendMessage(t *testing.T) {
	server := completionsServer(t, func(body map[string]any) any {
		if body["model"] != "gpt-4o-mini" {
			t.Errorf("model = %v, want gpt-4o-mini", body["model"])
		}
		messages := body["messages"].([]any)
		if len(messages) != 2 {
			t.Fatalf("len(messages) = %d, want system + user", len(messages))
		}
		first := messages[0].(map[string]any)
		if first["role"] != "system" {
			t.Errorf("messages[0].role = %v, want system", first["role"])
		}
		return map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": []any{
				map[string]any{
					"message":       map[string]any{"role": "assistant", "content": "hi there"},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13},
		}
	})
	defer server.Close()

	provider := New("gpt-4o-mini").
		WithAPIKey("sk-test").
		WithBaseURL(server.URL)

	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		SystemPrompt: "You are terse.",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if resp.Content != "hi there" {
		t.Errorf("Content = %q, want %q", resp.Content, "hi there")
	}
	if resp.FinishReason != "stop" {
		t.Errorf("FinishReason = %q, want stop", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 13 {
		t.Errorf("Usage = %+v, want total 13", resp.Usage)
	}
}

func TestSendMessage_RequestModelOverridesDefault(t *testing.T) {
	server := completionsServer(t, func(body map[string]any) any {
		if body["model"] != "gpt-4o" {
			t.Errorf("model = %v, want the per-request override gpt-4o", body["model"])
		}
		return map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		}
	})
	defer server.Close()

	provider := New("gpt-4o-mini").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gpt-4o",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
}

func TestSendMessage_EmptyChoices(t *testing.T) {
	server := completionsServer(t, func(body map[string]any) any {
		return map[string]any{"choices": []any{}}
	})
	defer server.Close()

	provider := New("gpt-4o-mini").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Fatalf("SendMessage() error = %v, want no-choices error", err)
	}
}

func TestSendMessage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := New("gpt-4o-mini").WithBaseURL(server.URL).WithAPIKey("bad")

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("SendMessage() error = %v, want 401 surfaced", err)
	}
}
