// Package llm provides the resilient completion client used for all
// structured extraction and generation tasks: an OpenAI-compatible chat
// completions POST with failure classification, bounded retry with
// exponential backoff, and JSON response cleanup utilities.
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
)

const (
	// DefaultBaseURL is the OpenAI-compatible API root.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single completion attempt.
	DefaultTimeout = 60 * time.Second

	defaultMaxAttempts = 3
	defaultBaseDelay   = 1000 * time.Millisecond
)

// Message roles accepted by the completion endpoint.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallOptions carries the per-task sampling parameters. MaxTokens of zero
// omits the field from the request.
type CallOptions struct {
	Temperature float64
	MaxTokens   int
}

// Client is the completion abstraction the extraction and analysis layers
// depend on.
type Client interface {
	// Complete sends the messages to the completion endpoint in JSON mode
	// and returns the first choice's content.
	Complete(ctx context.Context, messages []Message, opts CallOptions) (string, error)
}

// CompletionClient implements Client against an OpenAI-compatible
// chat completions endpoint. It is stateless beyond its configuration and is
// safe for concurrent use.
type CompletionClient struct {
	apiKey      string
	model       string
	endpoint    string
	httpClient  *http.Client
	maxAttempts int
	baseDelay   time.Duration
}

// NewCompletionClient builds a client from explicit configuration. The API
// key is required; model, base URL, and timeout fall back to defaults.
func NewCompletionClient(apiKey, model, baseURL string, timeout time.Duration) (*CompletionClient, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "API credential is required"}
	}
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &CompletionClient{
		apiKey:      apiKey,
		model:       model,
		endpoint:    strings.TrimSuffix(baseURL, "/") + "/chat/completions",
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}, nil
}

// Model returns the configured model name.
func (c *CompletionClient) Model() string {
	return c.model
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
	MaxTokens      int            `json:"max_tokens,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete issues the completion call with up to three total attempts,
// retrying only transient upstream statuses with exponential backoff.
func (c *CompletionClient) Complete(ctx context.Context, messages []Message, opts CallOptions) (string, error) {
	return retryDo(ctx, c.maxAttempts, c.baseDelay, func() (string, error) {
		return c.completeOnce(ctx, messages, opts)
	}, IsRetryable)
}

// completeOnce performs a single POST and classifies the outcome.
func (c *CompletionClient) completeOnce(ctx context.Context, messages []Message, opts CallOptions) (string, error) {
	reqBody := chatRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    opts.Temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		MaxTokens:      opts.MaxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return "", &AuthError{Body: string(body)}
	case http.StatusBadRequest:
		return "", &BadRequestError{Body: truncateBody(body)}
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable:
		return "", &TransientError{StatusCode: resp.StatusCode, Body: truncateBody(body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint returned status %d: %s", resp.StatusCode, truncateBody(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion endpoint error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &EmptyResponseError{}
	}

	return parsed.Choices[0].Message.Content, nil
}

// truncateBody keeps error payloads readable in logs and error messages.
func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
