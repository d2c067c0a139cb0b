package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/logger"
)

// Hugging Face Inference API defaults
const (
	ProviderHuggingFace = "huggingface"

	DefaultHuggingFaceURL   = "https://api-inference.huggingface.co"
	DefaultHuggingFaceModel = "distilbert-base-uncased-finetuned-sst-2-english"
)

type hfRequest struct {
	Inputs  string    `json:"inputs"`
	Options hfOptions `json:"options"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// HuggingFaceClassifier calls a text-classification model hosted on the
// Hugging Face Inference API
type HuggingFaceClassifier struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

// NewHuggingFaceClassifier creates a classifier for the given model.
// Empty baseURL and model fall back to the public API and the SST-2 model.
func NewHuggingFaceClassifier(baseURL, model, token string, timeout time.Duration) *HuggingFaceClassifier {
	if baseURL == "" {
		baseURL = DefaultHuggingFaceURL
	}
	if model == "" {
		model = DefaultHuggingFaceModel
	}
	return &HuggingFaceClassifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Classify returns the highest scoring label for text
func (c *HuggingFaceClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	body, err := json.Marshal(hfRequest{
		Inputs:  text,
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("huggingface", resp)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	best, err := bestLabel(raw)
	if err != nil {
		return nil, err
	}

	return &service.ClassificationResult{
		Label:        entity.NormalizeLabel(best.Label),
		Score:        entity.ClampScore(best.Score),
		ModelVersion: c.model,
	}, nil
}

// Ready reports whether the classifier is configured. The hosted API has no
// cheap readiness probe, so no request is made.
func (c *HuggingFaceClassifier) Ready(_ context.Context) error {
	if c.token == "" && c.baseURL == DefaultHuggingFaceURL {
		return errors.New("huggingface api token not configured")
	}
	return nil
}

// Name returns the provider name
func (c *HuggingFaceClassifier) Name() string {
	return ProviderHuggingFace
}

func (c *HuggingFaceClassifier) modelURL() string {
	return c.baseURL + "/models/" + c.model
}

// bestLabel accepts both the nested [[...]] and the flat [...] response
// shapes returned by text-classification pipelines.
func bestLabel(raw json.RawMessage) (*hfLabelScore, error) {
	var candidates []hfLabelScore

	var nested [][]hfLabelScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		for _, group := range nested {
			candidates = append(candidates, group...)
		}
	} else if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, fmt.Errorf("unexpected huggingface response: %s", logger.TruncateText(string(raw), 200))
	}

	if len(candidates) == 0 {
		return nil, errors.New("huggingface returned no labels")
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}
	return &best, nil
}
