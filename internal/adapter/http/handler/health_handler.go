package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// Service identity reported on the root endpoint
const (
	ServiceBanner  = "AI Mental Health API is running!"
	ServiceVersion = "1.0"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	classifier service.Classifier
	redis      *redis.Client
	logger     *zap.Logger
}

// NewHealthHandler creates a new health handler. All dependencies may be nil.
func NewHealthHandler(classifier service.Classifier, redis *redis.Client, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{
		classifier: classifier,
		redis:      redis,
		logger:     logger,
	}
}

// ServiceInfo represents the root endpoint response
type ServiceInfo struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfo{
		Status:  ServiceBanner,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"predict": "/predict (POST)",
			"health":  "/ (GET)",
		},
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check classifier
	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			h.logger.Warn("Classifier health check failed",
				zap.String("request_id", requestID(c)),
				zap.String("provider", h.classifier.Name()),
				zap.Error(err),
			)
			components["classifier"] = "error"
			healthy = false
		} else {
			components["classifier"] = "ok (" + h.classifier.Name() + ")"
		}
	} else {
		components["classifier"] = "not available"
		healthy = false
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warn("Redis health check failed",
				zap.String("request_id", requestID(c)),
				zap.Error(err),
			)
			components["redis"] = "error"
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "sentiment model not loaded"})
		return
	}
	if err := h.classifier.Ready(ctx); err != nil {
		h.logger.Warn("Classifier readiness check failed", zap.String("request_id", requestID(c)), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "sentiment model unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// NotFound handles unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":               MsgNotFound,
		"available_endpoints": []string{"/", "/predict"},
		"status":              StatusError,
		"request_id":          requestID(c),
	})
}

// MethodNotAllowed handles known routes called with the wrong method
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, MsgMethodNotAllowed)
}
