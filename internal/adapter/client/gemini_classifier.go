package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// Gemini defaults
const (
	ProviderGemini     = "gemini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// GeminiClassifier uses a Gemini model with a JSON response as the
// sentiment classifier
type GeminiClassifier struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClassifier creates a Gemini backed classifier. An empty baseURL
// uses the public Gemini API endpoint.
func NewGeminiClassifier(ctx context.Context, apiKey, baseURL, model string, timeout time.Duration) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	model = strings.TrimPrefix(model, "models/")
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClassifier{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Classify asks the model for a label and confidence
func (c *GeminiClassifier) Classify(ctx context.Context, text, _ string) (*service.ClassificationResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(sentimentSystemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			Temperature:       genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content failed: %w", err)
	}

	return parseVerdict(resp.Text(), c.model)
}

// Ready fetches the model metadata
func (c *GeminiClassifier) Ready(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.model, nil); err != nil {
		return fmt.Errorf("gemini model %s unavailable: %w", c.model, err)
	}
	return nil
}

// Name returns the provider name
func (c *GeminiClassifier) Name() string {
	return ProviderGemini
}
