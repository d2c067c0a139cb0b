package client

import (
	"context"
	"fmt"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// ProviderMLService is the provider name of the self-hosted model server
const ProviderMLService = "mlservice"

// MLClassifier adapts MLClient to the Classifier interface
type MLClassifier struct {
	client *MLClient
}

// NewMLClassifier creates a new MLClassifier
func NewMLClassifier(client *MLClient) service.Classifier {
	return &MLClassifier{client: client}
}

// Classify classifies a single text
func (c *MLClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	resp, err := c.client.Classify(ctx, text, requestID)
	if err != nil {
		return nil, err
	}

	return &service.ClassificationResult{
		Label:        entity.NormalizeLabel(resp.Result.Label),
		Score:        entity.ClampScore(resp.Result.Score),
		ModelVersion: resp.ModelVersion,
	}, nil
}

// Ready requires the readiness probe to pass and the health endpoint to
// report a loaded model
func (c *MLClassifier) Ready(ctx context.Context) error {
	if err := c.client.Ready(ctx); err != nil {
		return err
	}

	health, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	if !health.ModelLoaded {
		return fmt.Errorf("model server reports no model loaded (status %q)", health.Status)
	}
	return nil
}

// Name returns the provider name
func (c *MLClassifier) Name() string {
	return ProviderMLService
}
