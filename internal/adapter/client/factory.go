package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
)

// ErrUnknownProvider is returned for an unsupported classifier provider
var ErrUnknownProvider = errors.New("unknown classifier provider")

// NewClassifier builds the classifier selected by cfg.Provider
func NewClassifier(ctx context.Context, cfg *config.ClassifierConfig) (service.Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderHuggingFace, "":
		if cfg.APIKey == "" && (cfg.BaseURL == "" || cfg.BaseURL == DefaultHuggingFaceURL) {
			return nil, errors.New("huggingface api token is required for the hosted inference api")
		}
		return NewHuggingFaceClassifier(cfg.BaseURL, cfg.Model, cfg.APIKey, cfg.Timeout), nil

	case ProviderMLService:
		if cfg.BaseURL == "" {
			return nil, errors.New("classifier base_url is required for mlservice")
		}
		return NewMLClassifier(NewMLClient(cfg.BaseURL, cfg.Timeout)), nil

	case ProviderOpenAI:
		classifier, err := NewOpenAIClassifier(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return classifier, nil

	case ProviderGemini:
		classifier, err := NewGeminiClassifier(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return classifier, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
