package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// OpenAI defaults
const (
	ProviderOpenAI     = "openai"
	DefaultOpenAIModel = openai.GPT4oMini
)

// OpenAIClassifier uses a chat completion model in JSON mode as the
// sentiment classifier
type OpenAIClassifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClassifier creates an OpenAI backed classifier. baseURL may point
// at any OpenAI compatible endpoint.
func NewOpenAIClassifier(apiKey, baseURL, model string, timeout time.Duration) (*OpenAIClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClassifier{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}, nil
}

// Classify asks the model for a label and confidence
func (c *OpenAIClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sentimentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		User: requestID,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	return parseVerdict(resp.Choices[0].Message.Content, c.model)
}

// Ready fetches the configured model as an authenticated round trip
func (c *OpenAIClassifier) Ready(ctx context.Context) error {
	if _, err := c.client.GetModel(ctx, c.model); err != nil {
		return fmt.Errorf("openai model %s unavailable: %w", c.model, err)
	}
	return nil
}

// Name returns the provider name
func (c *OpenAIClassifier) Name() string {
	return ProviderOpenAI
}
