package repository

import (
	"context"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// ClassificationCache stores classifier output for identical inputs
type ClassificationCache interface {
	// Get returns the cached result; ok is false on a miss
	Get(ctx context.Context, provider, text string) (result *service.ClassificationResult, ok bool, err error)

	// Set stores a result under the provider and text
	Set(ctx context.Context, provider, text string, result *service.ClassificationResult) error
}
