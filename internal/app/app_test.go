package app

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/metrics"
	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

func TestBuild(t *testing.T) {
	t.Run("unknown provider degrades to model unavailable", func(t *testing.T) {
		cfg := &config.Config{
			Classifier: config.ClassifierConfig{Provider: "bogus"},
		}

		c := Build(context.Background(), cfg, zap.NewNop(), metrics.New())
		defer c.Close()

		assert.Nil(t, c.Classifier)
		assert.Nil(t, c.Redis)
		require.NotNil(t, c.PredictionUC)
		assert.Equal(t, usecase.DefaultMaxTextLength, c.PredictionUC.MaxTextLength())

		_, err := c.PredictionUC.Predict(context.Background(), &usecase.PredictInput{Text: "hello"})
		assert.ErrorIs(t, err, usecase.ErrModelUnavailable)
	})

	t.Run("wires classifier and redis cache", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.Config{
			Classifier: config.ClassifierConfig{
				Provider: "mlservice",
				BaseURL:  "http://127.0.0.1:1",
				Timeout:  time.Second,
			},
			Prediction: config.PredictionConfig{MaxTextLength: 200},
			Redis: config.RedisConfig{
				Enabled: true,
				Host:    mr.Host(),
				Port:    mustPort(t, mr.Port()),
				TTL:     time.Minute,
			},
		}

		c := Build(context.Background(), cfg, zap.NewNop(), nil)
		defer c.Close()

		require.NotNil(t, c.Classifier)
		assert.Equal(t, "mlservice", c.Classifier.Name())
		assert.NotNil(t, c.Redis)
		assert.Equal(t, 200, c.PredictionUC.MaxTextLength())
	})

	t.Run("unreachable redis disables cache", func(t *testing.T) {
		cfg := &config.Config{
			Classifier: config.ClassifierConfig{Provider: "bogus"},
			Redis:      config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1},
		}

		c := Build(context.Background(), cfg, zap.NewNop(), nil)
		defer c.Close()

		assert.Nil(t, c.Redis)
	})
}

func mustPort(t *testing.T, port string) int {
	t.Helper()
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return p
}
