// Package translate turns stored recipes into per-language translations
// using an OpenAI-compatible chat completion backend.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-recipes/pkg/interfaces"
)

const (
	mistralBaseURL = "https://api.mistral.ai/v1"
	groqBaseURL    = "https://api.groq.com/openai/v1"

	defaultMistralModel = "open-mistral-nemo"
	defaultGroqModel    = "llama-3.3-70b-versatile"

	defaultHTTPTimeout = 60 * time.Second

	translateTemperature = 0.3
	translateMaxTokens   = 4000
	pingMaxTokens        = 10
)

var (
	// ErrAPIKeyRequired indicates the client was built without credentials.
	ErrAPIKeyRequired = errors.New("translate: api key required")
	// ErrUnauthorized maps HTTP 401 responses.
	ErrUnauthorized = errors.New("translate: invalid api key")
	// ErrForbidden maps HTTP 403 responses.
	ErrForbidden = errors.New("translate: api key lacks permissions")
	// ErrRateLimited maps HTTP 429 responses.
	ErrRateLimited = errors.New("translate: rate limit exceeded")
	// ErrEmptyResponse indicates the backend returned no choices.
	ErrEmptyResponse = errors.New("translate: empty response from backend")
)

// Client calls an OpenAI-compatible chat completion endpoint. Mistral and
// Groq expose the same wire format, so one client serves both.
type Client struct {
	provider   string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option customizes the chat client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		base = strings.TrimSpace(base)
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithModel overrides the default model for the provider.
func WithModel(model string) Option {
	return func(c *Client) {
		model = strings.TrimSpace(model)
		if model != "" {
			c.model = model
		}
	}
}

// NewMistralClient constructs a client for the Mistral API.
func NewMistralClient(apiKey string, opts ...Option) *Client {
	return newClient("mistral", apiKey, mistralBaseURL, defaultMistralModel, opts...)
}

// NewGroqClient constructs a client for the Groq API.
func NewGroqClient(apiKey string, opts ...Option) *Client {
	return newClient("groq", apiKey, groqBaseURL, defaultGroqModel, opts...)
}

func newClient(provider, apiKey, baseURL, model string, opts ...Option) *Client {
	client := &Client{
		provider:   provider,
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

// Provider reports which backend this client talks to.
func (c *Client) Provider() string {
	return c.provider
}

// Translate sends the prepared prompt to the backend and returns the
// translated text verbatim.
func (c *Client) Translate(ctx context.Context, req interfaces.TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", fmt.Errorf("translate %s: text required", c.provider)
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = c.model
	}

	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(req.SystemPrompt) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Text})

	completion, err := c.complete(ctx, chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: translateTemperature,
		MaxTokens:   translateMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return completion, nil
}

// Ping performs a minimal completion to verify credentials and reachability.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.complete(ctx, chatCompletionRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: "Hello"}},
		MaxTokens: pingMaxTokens,
	})
	return err
}

func (c *Client) complete(ctx context.Context, payload chatCompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyRequired
	}

	endpoint, err := url.JoinPath(c.baseURL, "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("translate %s: build url: %w", c.provider, err)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("translate %s: encode request: %w", c.provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("translate %s: request: %w", c.provider, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate %s: request failed: %w", c.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate %s: read body: %w", c.provider, err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return "", fmt.Errorf("translate %s: %w", c.provider, ErrUnauthorized)
	case http.StatusForbidden:
		return "", fmt.Errorf("translate %s: %w", c.provider, ErrForbidden)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("translate %s: %w", c.provider, ErrRateLimited)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("translate %s: http %d: %s", c.provider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("translate %s: decode response: %w", c.provider, err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("translate %s: api error: %s", c.provider, strings.TrimSpace(completion.Error.Message))
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("translate %s: %w", c.provider, ErrEmptyResponse)
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("translate %s: %w", c.provider, ErrEmptyResponse)
	}
	return content, nil
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
