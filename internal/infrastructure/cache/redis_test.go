package cache

import (
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("connects to running server", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)

		client, err := NewRedisClient(&config.RedisConfig{Host: srv.Host(), Port: port})

		require.NoError(t, err)
		assert.NotNil(t, client)
		_ = client.Close()
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		srv := miniredis.RunT(t)
		port, err := strconv.Atoi(srv.Port())
		require.NoError(t, err)
		srv.Close()

		client, err := NewRedisClient(&config.RedisConfig{Host: "127.0.0.1", Port: port})

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
