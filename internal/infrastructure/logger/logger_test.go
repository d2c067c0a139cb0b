package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "JSON format", level: "info", format: "json"},
		{name: "console format", level: "debug", format: "console"},
		{name: "invalid level defaults to info", level: "invalid", format: "json"},
		{name: "error level", level: "error", format: "json"},
		{name: "warn level", level: "warn", format: "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&config.LogConfig{Level: tt.level, Format: tt.format})

			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}

	t.Run("invalid level logs at info", func(t *testing.T) {
		logger, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"})

		assert.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 50))
	assert.Equal(t, "abc...", TruncateText("abcdef", 3))
	assert.Equal(t, "😊😊...", TruncateText("😊😊😊", 2))
}
