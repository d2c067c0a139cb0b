package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
)

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.ClassifierConfig
		expectErr    bool
		expectedName string
	}{
		{
			name:         "huggingface with token",
			cfg:          config.ClassifierConfig{Provider: "huggingface", APIKey: "hf_x", Timeout: time.Second},
			expectedName: ProviderHuggingFace,
		},
		{
			name:         "huggingface self hosted without token",
			cfg:          config.ClassifierConfig{Provider: "huggingface", BaseURL: "http://tei:8080"},
			expectedName: ProviderHuggingFace,
		},
		{
			name:      "huggingface hosted without token",
			cfg:       config.ClassifierConfig{Provider: "huggingface"},
			expectErr: true,
		},
		{
			name:         "empty provider defaults to huggingface",
			cfg:          config.ClassifierConfig{APIKey: "hf_x"},
			expectedName: ProviderHuggingFace,
		},
		{
			name:         "mlservice",
			cfg:          config.ClassifierConfig{Provider: "MLService", BaseURL: "http://model:8000"},
			expectedName: ProviderMLService,
		},
		{
			name:      "mlservice without base url",
			cfg:       config.ClassifierConfig{Provider: "mlservice"},
			expectErr: true,
		},
		{
			name:         "openai",
			cfg:          config.ClassifierConfig{Provider: "openai", APIKey: "sk-test"},
			expectedName: ProviderOpenAI,
		},
		{
			name:      "openai without key",
			cfg:       config.ClassifierConfig{Provider: "openai"},
			expectErr: true,
		},
		{
			name:      "gemini without key",
			cfg:       config.ClassifierConfig{Provider: "gemini"},
			expectErr: true,
		},
		{
			name:      "unknown provider",
			cfg:       config.ClassifierConfig{Provider: "vader"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier, err := NewClassifier(context.Background(), &tt.cfg)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, classifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, classifier.Name())
		})
	}
}

func TestNewClassifier_UnknownProviderIsSentinel(t *testing.T) {
	_, err := NewClassifier(context.Background(), &config.ClassifierConfig{Provider: "vader"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
