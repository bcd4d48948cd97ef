package ai

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://ai.gateway.lovable.dev/v1"
	DefaultModel   = "google/gemini-2.5-flash"
)

// Config carries everything the gateway client needs. It is built once in
// main and passed in; the client keeps no process-global state.
type Config struct {
	APIKey      string
	BaseURL     string  // defaults to DefaultBaseURL
	Model       string  // defaults to DefaultModel
	Temperature float32 // defaults to 0.8
	Timeout     time.Duration
}

// GatewayClient talks to the hosted LLM gateway over the OpenAI
// chat-completion wire format. One shot per call, no retries.
type GatewayClient struct {
	client *openai.Client
	cfg    Config
}

func NewGatewayClient(cfg Config) *GatewayClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &GatewayClient{
		client: openai.NewClientWithConfig(oc),
		cfg:    cfg,
	}
}

func (c *GatewayClient) Complete(
	ctx context.Context,
	systemPrompt string,
	userMessage string,
) (string, error) {

	// Checked here so a misconfigured deployment fails before any dial.
	if c.cfg.APIKey == "" {
		return "", ErrMissingCredential
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		log.Println("[ai] gateway error:", err)
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return "", ErrService
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps the gateway's HTTP status onto the caller-facing failure
// classes. 429 and 402 stay distinguishable; everything else is generic.
func classify(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrQuotaExhausted
	default:
		return ErrService
	}
}
