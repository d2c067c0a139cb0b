package service

import (
	"context"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
)

// ClassificationResult represents the result of sentiment classification
type ClassificationResult struct {
	Label        entity.Label `json:"label"`
	Score        float64      `json:"score"`
	ModelVersion string       `json:"model_version,omitempty"`
}

// Classifier defines the interface for a pretrained sentiment model
type Classifier interface {
	// Classify classifies a single text
	Classify(ctx context.Context, text, requestID string) (*ClassificationResult, error)

	// Ready reports whether the model can currently serve requests
	Ready(ctx context.Context) error

	// Name identifies the backing provider, e.g. "huggingface"
	Name() string
}
