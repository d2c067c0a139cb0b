package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/adapter/http/handler"
	"github.com/AkshatRaj00/ai-companion-project/internal/adapter/http/middleware"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/metrics"
	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// Dependencies holds everything the router wires into handlers.
// Classifier and Redis may be nil.
type Dependencies struct {
	PredictionUC   usecase.PredictionUsecase
	Classifier     service.Classifier
	Redis          *redis.Client
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS(deps.AllowedOrigins))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.Classifier, deps.Redis, deps.Logger)
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Prediction
	predictHandler := handler.NewPredictHandler(deps.PredictionUC)
	router.POST("/predict", predictHandler.Predict)

	router.NoRoute(handler.NotFound)
	router.NoMethod(handler.MethodNotAllowed)

	return router
}
