package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cashorclout-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{
		apiKey:     "key",
		model:      "claude-sonnet-4-6",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func messagesReply(text string) string {
	body, _ := json.Marshal(map[string]any{
		"id":    "msg_1",
		"model": "claude-sonnet-4-6",
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
		"usage":       map[string]int{"input_tokens": 100, "output_tokens": 200},
	})
	return string(body)
}

func TestAnalyzeClaim(t *testing.T) {
	var gotReq messagesRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "key" {
			t.Errorf("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") != apiVersion {
			t.Errorf("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(messagesReply(`{"effortScore": 7}`)))
	})

	raw, err := client.AnalyzeClaim(context.Background(), llm.AnalyzeInput{Idea: "a", Claim: "b"})
	if err != nil {
		t.Fatalf("AnalyzeClaim: %v", err)
	}
	if string(raw) != `{"effortScore": 7}` {
		t.Fatalf("unexpected raw reply %q", raw)
	}
	if gotReq.MaxTokens != maxTokens {
		t.Fatalf("max_tokens %d, want %d", gotReq.MaxTokens, maxTokens)
	}
	if gotReq.System == "" {
		t.Fatalf("expected system prompt in request")
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("expected a single user message, got %+v", gotReq.Messages)
	}
}

func TestAnalyzeClaimNonJSONReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(messagesReply("Sure! Here's my analysis:")))
	})

	if _, err := client.AnalyzeClaim(context.Background(), llm.AnalyzeInput{Idea: "a", Claim: "b"}); err == nil {
		t.Fatalf("expected error for non-JSON reply")
	}
}

func TestAnalyzeClaimProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	})

	_, err := client.AnalyzeClaim(context.Background(), llm.AnalyzeInput{Idea: "a", Claim: "b"})
	if err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestAnalyzeClaimEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_1","content":[],"stop_reason":"end_turn"}`))
	})

	if _, err := client.AnalyzeClaim(context.Background(), llm.AnalyzeInput{Idea: "a", Claim: "b"}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "model"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", " "); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
