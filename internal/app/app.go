// Package app wires configuration into the prediction pipeline shared by
// the API server and the CLI.
package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	adaptercache "github.com/AkshatRaj00/ai-companion-project/internal/adapter/cache"
	"github.com/AkshatRaj00/ai-companion-project/internal/adapter/client"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/repository"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/cache"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/metrics"
	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// Components is the assembled prediction pipeline.
// Classifier and Redis are nil when unavailable.
type Components struct {
	Classifier   service.Classifier
	Redis        *redis.Client
	PredictionUC usecase.PredictionUsecase
}

// Build creates the classifier, the optional cache and the usecase.
// Neither a classifier nor a Redis failure is fatal: the former degrades
// predictions to MODEL_UNAVAILABLE, the latter disables caching.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) *Components {
	c := &Components{}

	classifier, err := client.NewClassifier(ctx, &cfg.Classifier)
	if err != nil {
		log.Error("Error loading sentiment model", zap.String("provider", cfg.Classifier.Provider), zap.Error(err))
	} else {
		log.Info("Sentiment model loaded successfully", zap.String("provider", classifier.Name()))
		c.Classifier = classifier
	}

	var classificationCache repository.ClassificationCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		} else {
			log.Info("Connected to Redis", zap.String("address", cfg.Redis.Addr()))
			c.Redis = redisClient
			classificationCache = adaptercache.NewRedisClassificationCache(redisClient, cfg.Redis.TTL)
		}
	}

	c.PredictionUC = usecase.NewPredictionUsecase(usecase.PredictionConfig{
		Classifier:    c.Classifier,
		Cache:         classificationCache,
		Recorder:      m,
		Logger:        log,
		MaxTextLength: cfg.Prediction.MaxTextLength,
	})

	return c
}

// Close releases held connections
func (c *Components) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
