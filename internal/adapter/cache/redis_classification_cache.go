package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/repository"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

const keyPrefix = "moodapi:cls:"

// RedisClassificationCache stores classifier results in redis, keyed by
// provider and a hash of the text
type RedisClassificationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClassificationCache creates a new redis backed cache
func NewRedisClassificationCache(client *redis.Client, ttl time.Duration) repository.ClassificationCache {
	return &RedisClassificationCache{client: client, ttl: ttl}
}

// Get returns a cached result
func (c *RedisClassificationCache) Get(ctx context.Context, provider, text string) (*service.ClassificationResult, bool, error) {
	data, err := c.client.Get(ctx, Key(provider, text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var result service.ClassificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &result, true, nil
}

// Set stores a result with the configured TTL
func (c *RedisClassificationCache) Set(ctx context.Context, provider, text string, result *service.ClassificationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := c.client.Set(ctx, Key(provider, text), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Key builds the cache key; the raw text never appears in redis
func Key(provider, text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + provider + ":" + hex.EncodeToString(sum[:])
}
