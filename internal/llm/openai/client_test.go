package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docqa-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", "gpt-4o-mini", server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini", ""); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
}

func TestAnswerSuccess(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Paris.  "}},
			},
			"usage": map[string]int{"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15},
		})
	})

	answer, err := client.Answer(context.Background(), llm.Request{
		System: "You answer questions about documents.",
		User:   "What is the capital of France?",
	})
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != "Paris." {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.Model != "gpt-4o-mini" {
		t.Fatalf("expected model in request, got %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("expected system+user messages, got %+v", gotBody.Messages)
	}
	if gotBody.Temperature != temperature || gotBody.MaxTokens != maxTokens {
		t.Fatalf("expected fixed sampling settings, got temp=%v max=%d", gotBody.Temperature, gotBody.MaxTokens)
	}
}

func TestAnswerAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Incorrect API key provided", "type": "invalid_request_error"},
		})
	})

	_, err := client.Answer(context.Background(), llm.Request{System: "s", User: "u"})
	if err == nil {
		t.Fatalf("expected error from API error payload")
	}
}

func TestAnswerNonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	})

	_, err := client.Answer(context.Background(), llm.Request{System: "s", User: "u"})
	if err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestAnswerEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	answer, err := client.Answer(context.Background(), llm.Request{System: "s", User: "u"})
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != "" {
		t.Fatalf("expected empty answer, got %q", answer)
	}
}
