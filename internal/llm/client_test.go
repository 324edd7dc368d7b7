package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vibes-run/leadchat/internal/config"
	"github.com/vibes-run/leadchat/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.AnthropicConfig{
		APIKey:    "test-key",
		BaseURL:   server.URL,
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 1024,
	})
}

func TestCompleteSendsHistoryAndHeaders(t *testing.T) {
	var captured apiRequest
	var gotKey, gotVersion string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "Hello LEAD_COMPLETE"}},
		})
	})

	history := []*domain.Message{
		{Role: "user", Content: "hi"},
		{Role: "system", Content: "internal note"},
		{Role: "assistant", Content: "hello"},
	}
	answers := domain.InterviewAnswers{"industry": "fintech"}

	reply, err := client.Complete(context.Background(), history, "tell me more", answers)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "Hello LEAD_COMPLETE" {
		t.Errorf("reply = %q", reply)
	}

	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q", gotKey)
	}
	if gotVersion != anthropicVersion {
		t.Errorf("anthropic-version = %q", gotVersion)
	}

	// System-role rows are filtered; the new message is appended last.
	if len(captured.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(captured.Messages))
	}
	for _, m := range captured.Messages {
		if m.Role == "system" {
			t.Error("system-role message forwarded to the API")
		}
	}
	if last := captured.Messages[len(captured.Messages)-1]; last.Content != "tell me more" {
		t.Errorf("last message = %q, want the new user turn", last.Content)
	}

	if captured.System == "" {
		t.Error("system prompt missing")
	}
	if captured.Model != "claude-sonnet-4-20250514" || captured.MaxTokens != 1024 {
		t.Errorf("model/max_tokens = %s/%d", captured.Model, captured.MaxTokens)
	}
}

func TestCompleteFallbackWhenNoTextBlock(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []map[string]string{}})
	})

	reply, err := client.Complete(context.Background(), nil, "hi", nil)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != fallbackResponse {
		t.Errorf("reply = %q, want fallback apology", reply)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("overloaded"))
	})

	_, err := client.Complete(context.Background(), nil, "hi", nil)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusTooManyRequests || upstream.Body != "overloaded" {
		t.Errorf("upstream = %+v", upstream)
	}
}

func TestPromptOmitsSystemPrompt(t *testing.T) {
	var captured apiRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "{}"}},
		})
	})

	if _, err := client.Prompt(context.Background(), "extract this"); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if captured.System != "" {
		t.Errorf("system = %q, want empty for standalone prompts", captured.System)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Content != "extract this" {
		t.Errorf("messages = %+v", captured.Messages)
	}
}

func TestSignalsCompletion(t *testing.T) {
	if !SignalsCompletion("All set, LEAD_COMPLETE, thanks!") {
		t.Error("sentinel not detected")
	}
	if SignalsCompletion("lead_complete is lowercase") {
		t.Error("detection must be exact substring match")
	}
}

func TestStripCompletionMarker(t *testing.T) {
	got := StripCompletionMarker("  LEAD_COMPLETE Thanks! LEAD_COMPLETE ")
	if got != "Thanks!" {
		t.Errorf("stripped = %q, want %q", got, "Thanks!")
	}
	if got := StripCompletionMarker("no marker here"); got != "no marker here" {
		t.Errorf("stripped = %q", got)
	}
}
