package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// Error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeEmptyText        = "EMPTY_TEXT"
	CodeTextTooLong      = "TEXT_TOO_LONG"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeClassifierError  = "CLASSIFIER_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Client facing messages
const (
	MsgNoJSON           = "No JSON data provided"
	MsgInvalidJSON      = "Invalid JSON payload"
	MsgTextNotString    = "Field 'text' must be a string"
	MsgEmptyText        = "No text provided or text is empty"
	MsgModelUnavailable = "Sentiment analysis model not available"
	MsgClassifierError  = "Sentiment analysis failed"
	MsgNotFound         = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalError    = "Internal server error"
)

// ErrorMapping represents the HTTP translation of a usecase error
type ErrorMapping struct {
	StatusCode int
	Code       string
	Message    string
}

// TextTooLongMessage is the message for inputs over the limit
func TextTooLongMessage(limit int) string {
	return fmt.Sprintf("Text too long. Please keep it under %d characters.", limit)
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// maxTextLength is used in the message for ErrTextTooLong.
func MapUsecaseError(err error, maxTextLength int) ErrorMapping {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest):
		return ErrorMapping{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    MsgNoJSON,
		}
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorMapping{
			StatusCode: http.StatusBadRequest,
			Code:       CodeEmptyText,
			Message:    MsgEmptyText,
		}
	case errors.Is(err, usecase.ErrTextTooLong):
		return ErrorMapping{
			StatusCode: http.StatusBadRequest,
			Code:       CodeTextTooLong,
			Message:    TextTooLongMessage(maxTextLength),
		}
	case errors.Is(err, usecase.ErrModelUnavailable):
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeModelUnavailable,
			Message:    MsgModelUnavailable,
		}
	case errors.Is(err, usecase.ErrClassificationFailed):
		return ErrorMapping{
			StatusCode: http.StatusBadGateway,
			Code:       CodeClassifierError,
			Message:    MsgClassifierError,
		}
	default:
		return ErrorMapping{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternalError,
			Message:    MsgInternalError,
		}
	}
}

// HandleUsecaseError sends the JSON error response for a usecase error
func HandleUsecaseError(c *gin.Context, err error, maxTextLength int) {
	m := MapUsecaseError(err, maxTextLength)
	respondError(c, m.StatusCode, m.Code, m.Message)
}

// HandleInvalidRequest handles a malformed request body
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}
