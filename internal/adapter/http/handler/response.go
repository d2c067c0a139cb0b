package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// ErrorBody represents the error response sent to clients
type ErrorBody struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// PredictResponse represents the successful prediction response
type PredictResponse struct {
	Sentiment       string   `json:"sentiment"`
	Recommendation  string   `json:"recommendation"`
	ConfidenceScore float64  `json:"confidence_score"`
	AdditionalTips  []string `json:"additional_tips"`
	ModelVersion    string   `json:"model_version,omitempty"`
	Cached          bool     `json:"cached"`
	Status          string   `json:"status"`
	RequestID       string   `json:"request_id"`
}

func requestID(c *gin.Context) string {
	id := c.GetString(RequestIDKey)
	if id == "" {
		id = uuid.New().String()
		c.Set(RequestIDKey, id)
	}
	return id
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{
		Status:    StatusError,
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}
