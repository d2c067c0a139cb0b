package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// MaxBodyBytes caps the request body read by the predict endpoint
const MaxBodyBytes = 64 << 10

// PredictHandler handles sentiment prediction requests
type PredictHandler struct {
	predictionUC usecase.PredictionUsecase
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(predictionUC usecase.PredictionUsecase) *PredictHandler {
	return &PredictHandler{predictionUC: predictionUC}
}

// Predict handles POST /predict
//
// The body is read regardless of Content-Type. It must be a non-empty JSON
// object; "text" is trimmed and validated by the usecase.
func (h *PredictHandler) Predict(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	text, err := decodeText(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			HandleUsecaseError(c, usecase.ErrTextTooLong, h.predictionUC.MaxTextLength())
			return
		}
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), &usecase.PredictInput{
		Text:      text,
		RequestID: requestID(c),
	})
	if err != nil {
		HandleUsecaseError(c, err, h.predictionUC.MaxTextLength())
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Sentiment:       output.Sentiment.String(),
		Recommendation:  output.Recommendation,
		ConfidenceScore: output.ConfidenceScore,
		AdditionalTips:  output.AdditionalTips,
		ModelVersion:    output.ModelVersion,
		Cached:          output.Cached,
		Status:          StatusSuccess,
		RequestID:       requestID(c),
	})
}

// decodeText extracts the "text" field. The returned error message is safe
// to send to the client, except for *http.MaxBytesError.
func decodeText(c *gin.Context) (string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", err
		}
		return "", errors.New(MsgInvalidJSON)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", errors.New(MsgNoJSON)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.New(MsgInvalidJSON)
	}
	if isEmptyJSON(body) {
		return "", errors.New(MsgNoJSON)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", errors.New(MsgInvalidJSON)
	}

	field, ok := payload["text"]
	if !ok || bytes.Equal(bytes.TrimSpace(field), []byte("null")) {
		return "", nil
	}

	var text string
	if err := json.Unmarshal(field, &text); err != nil {
		return "", errors.New(MsgTextNotString)
	}
	return text, nil
}

// isEmptyJSON reports whether a decoded body carries no data:
// null, false, zero, "", [] or {}
func isEmptyJSON(v any) bool {
	switch body := v.(type) {
	case nil:
		return true
	case bool:
		return !body
	case float64:
		return body == 0
	case string:
		return body == ""
	case []any:
		return len(body) == 0
	case map[string]any:
		return len(body) == 0
	default:
		return false
	}
}
