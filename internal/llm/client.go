package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vibes-run/leadchat/internal/config"
	"github.com/vibes-run/leadchat/internal/domain"
)

const anthropicVersion = "2023-06-01"

// completionSentinel is the marker the model embeds in its reply when the
// conversation has produced enough information to finalize a lead.
const completionSentinel = "LEAD_COMPLETE"

// fallbackResponse is returned when the API answers without a text block.
// The conversation must always produce something to show the user.
const fallbackResponse = "I apologize, but I had trouble generating a response. Could you try again?"

// UpstreamError is a non-success response from the completion API
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion API error: %d - %s", e.Status, e.Body)
}

// Client calls the Anthropic Messages API
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewClient creates a completion client from configuration
func NewClient(cfg config.AnthropicConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends the conversation history plus the new user message with the
// lead-qualification system prompt and returns the assistant's reply.
// Stored system-role messages are filtered out of the forwarded history.
func (c *Client) Complete(ctx context.Context, history []*domain.Message, newMessage string, answers domain.InterviewAnswers) (string, error) {
	messages := make([]apiMessage, 0, len(history)+1)
	for _, m := range history {
		if m.Role == "system" {
			continue
		}
		messages = append(messages, apiMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, apiMessage{Role: "user", Content: newMessage})

	return c.send(ctx, apiRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    BuildSystemPrompt(answers),
		Messages:  messages,
	})
}

// Prompt sends a single standalone user prompt with no system prompt
func (c *Client) Prompt(ctx context.Context, prompt string) (string, error) {
	return c.send(ctx, apiRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	})
}

func (c *Client) send(ctx context.Context, req apiRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(b)}
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return fallbackResponse, nil
}

// SignalsCompletion reports whether a reply carries the completion sentinel.
// Isolated here so the detection strategy can change without touching the
// gateway.
func SignalsCompletion(text string) bool {
	return strings.Contains(text, completionSentinel)
}

// StripCompletionMarker removes every occurrence of the completion sentinel
func StripCompletionMarker(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, completionSentinel, ""))
}
