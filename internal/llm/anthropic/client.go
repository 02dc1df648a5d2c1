package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cashorclout-backend/internal/llm"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"

	// Output budget for one analysis. The reply is a single small JSON object.
	maxTokens = 1024
)

// Client implements llm.Client using the Anthropic Messages API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Anthropic client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Anthropic")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      *struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// AnalyzeClaim runs a single analysis attempt. A reply that is not valid
// JSON is an error; there is no repair or retry pass.
func (c *Client) AnalyzeClaim(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	system, user := BuildPrompt(input)
	raw, usage, err := c.messagesOnce(ctx, system, user)
	if err != nil {
		return nil, err
	}
	logUsage(c.model, usage)

	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON from Anthropic")
	}
	return raw, nil
}

func (c *Client) messagesOnce(ctx context.Context, system, user string) (json.RawMessage, *messagesUsage, error) {
	reqBody := messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []message{{Role: "user", Content: user}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, nil, fmt.Errorf("anthropic request timeout: %w", err)
		}
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, nil, fmt.Errorf("anthropic response parse: %w", err)
	}
	if parsed.Error != nil {
		return nil, nil, fmt.Errorf("anthropic error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Content) == 0 {
		return nil, nil, fmt.Errorf("anthropic response missing content")
	}

	text := strings.TrimSpace(parsed.Content[0].Text)
	if text == "" {
		return nil, nil, fmt.Errorf("anthropic response empty content")
	}
	return json.RawMessage(text), toUsage(parsed.Usage), nil
}

type messagesUsage struct {
	InputTokens  int
	OutputTokens int
}

func toUsage(raw *struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}) *messagesUsage {
	if raw == nil {
		return nil
	}
	return &messagesUsage{
		InputTokens:  raw.InputTokens,
		OutputTokens: raw.OutputTokens,
	}
}

func logUsage(model string, usage *messagesUsage) {
	if usage == nil {
		log.Printf("llm response model=%s", model)
		return
	}
	log.Printf("llm response model=%s input_tokens=%d output_tokens=%d",
		model, usage.InputTokens, usage.OutputTokens)
}

var _ llm.Client = (*Client)(nil)
