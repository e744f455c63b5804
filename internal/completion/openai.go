package completion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Default configuration values.
const (
	// Models. The extractor model handles JSON completions; the prompt
	// builder model handles free-text prompt generation.
	defaultJSONModel = "gpt-4o-mini"
	defaultTextModel = "gpt-4o-mini"

	// Retry configuration.
	defaultMaxRetries = 3
	defaultBaseDelay  = 1 * time.Second
	defaultMaxDelay   = 30 * time.Second
)

// chatCompleter is an internal interface for OpenAI chat completion.
// *openai.Client implements this implicitly; tests inject mocks.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Compile-time interface compliance check.
var _ Completer = (*OpenAIClient)(nil)

// OpenAIClient implements Completer on top of OpenAI's chat completion
// API, with exponential backoff retry for transient errors.
type OpenAIClient struct {
	client     chatCompleter
	jsonModel  string
	textModel  string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// Option configures an OpenAIClient.
type Option func(*OpenAIClient)

// WithJSONModel sets the model used for JSON completions.
func WithJSONModel(model string) Option {
	return func(c *OpenAIClient) {
		if model != "" {
			c.jsonModel = model
		}
	}
}

// WithTextModel sets the model used for free-text completions.
func WithTextModel(model string) Option {
	return func(c *OpenAIClient) {
		if model != "" {
			c.textModel = model
		}
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(n int) Option {
	return func(c *OpenAIClient) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelays sets the base and max delays for exponential backoff.
func WithRetryDelays(base, max time.Duration) Option {
	return func(c *OpenAIClient) {
		if base > 0 {
			c.baseDelay = base
		}
		if max > 0 {
			c.maxDelay = max
		}
	}
}

// withChatCompleter sets a custom chat completer (for testing).
func withChatCompleter(cc chatCompleter) Option {
	return func(c *OpenAIClient) {
		c.client = cc
	}
}

// NewOpenAIClient creates a client for the given API key.
// Returns ErrNoAPIKey when the key is empty: an unconfigured service is
// a terminal configuration error, detected up front rather than on the
// first call.
func NewOpenAIClient(apiKey string, opts ...Option) (*OpenAIClient, error) {
	c := &OpenAIClient{
		jsonModel:  defaultJSONModel,
		textModel:  defaultTextModel,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		maxDelay:   defaultMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		if apiKey == "" {
			return nil, ErrNoAPIKey
		}
		c.client = openai.NewClient(apiKey)
	}
	return c, nil
}

// CompleteJSON requests a strict-JSON completion and returns the raw
// payload. Shape validation belongs to the caller; this layer only
// guarantees the payload is syntactically valid JSON.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	req := openai.ChatCompletionRequest{
		Model: c.jsonModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	content, err := c.completeWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	raw := json.RawMessage(content)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("response is not valid JSON: %w", ErrMalformedResponse)
	}
	return raw, nil
}

// CompleteText requests a free-form completion and returns the trimmed
// reply.
func (c *OpenAIClient) CompleteText(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	return c.completeWithRetry(ctx, req)
}

// completeWithRetry executes the request with exponential backoff and
// returns the trimmed content of the first choice.
func (c *OpenAIClient) completeWithRetry(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	cfg := RetryConfig{
		MaxRetries: c.maxRetries,
		BaseDelay:  c.baseDelay,
		MaxDelay:   c.maxDelay,
	}

	return RetryWithBackoff(ctx, cfg, func() (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyResponse
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}, isTransient)
}

// isTransient reports whether an API error is worth retrying: rate
// limits and server-side failures, nothing else.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	return false
}
