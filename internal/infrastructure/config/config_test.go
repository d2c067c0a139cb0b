package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, 5001, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

		// Check classifier defaults
		assert.Equal(t, "huggingface", cfg.Classifier.Provider)
		assert.Equal(t, 30*time.Second, cfg.Classifier.Timeout)

		assert.Equal(t, 1000, cfg.Prediction.MaxTextLength)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

		// Check redis defaults
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("MOODAPI_SERVER_PORT", "9090")
		t.Setenv("MOODAPI_CLASSIFIER_PROVIDER", "mlservice")
		t.Setenv("MOODAPI_CLASSIFIER_BASE_URL", "http://model:8000")
		t.Setenv("MOODAPI_CLASSIFIER_TIMEOUT", "5s")
		t.Setenv("MOODAPI_REDIS_ENABLED", "true")
		t.Setenv("MOODAPI_LOG_LEVEL", "debug")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "mlservice", cfg.Classifier.Provider)
		assert.Equal(t, "http://model:8000", cfg.Classifier.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Classifier.Timeout)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects invalid max text length", func(t *testing.T) {
		t.Setenv("MOODAPI_PREDICTION_MAX_TEXT_LENGTH", "0")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:5001", ServerConfig{Host: "127.0.0.1", Port: 5001}.Addr())
	assert.Equal(t, "localhost:6379", RedisConfig{Host: "localhost", Port: 6379}.Addr())
}
