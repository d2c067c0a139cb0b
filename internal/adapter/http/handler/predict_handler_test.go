package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// MockPredictionUsecase is a mock implementation of usecase.PredictionUsecase
type MockPredictionUsecase struct {
	mock.Mock
}

func (m *MockPredictionUsecase) Predict(ctx context.Context, input *usecase.PredictInput) (*usecase.PredictOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PredictOutput), args.Error(1)
}

func (m *MockPredictionUsecase) MaxTextLength() int {
	return 1000
}

func setupPredictRouter(uc usecase.PredictionUsecase) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(RequestIDKey, "req-123")
		c.Next()
	})
	router.POST("/predict", NewPredictHandler(uc).Predict)
	return router
}

func postPredict(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func withText(text string) any {
	return mock.MatchedBy(func(in *usecase.PredictInput) bool {
		return in.Text == text && in.RequestID == "req-123"
	})
}

func TestPredictHandler_Predict(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, withText("I feel great")).Return(&usecase.PredictOutput{
			Sentiment:       entity.LabelPositive,
			Recommendation:  "keep going",
			ConfidenceScore: 0.97,
			AdditionalTips:  []string{"a", "b", "c", "d"},
			ModelVersion:    "sst2",
		}, nil)

		w := postPredict(setupPredictRouter(uc), `{"text":"I feel great"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp PredictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "POSITIVE", resp.Sentiment)
		assert.Equal(t, "keep going", resp.Recommendation)
		assert.Equal(t, 0.97, resp.ConfidenceScore)
		assert.Len(t, resp.AdditionalTips, 4)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "req-123", resp.RequestID)
		uc.AssertExpectations(t)
	})

	t.Run("body without content type is still parsed", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, withText("hello")).Return(&usecase.PredictOutput{
			Sentiment:      entity.LabelNeutral,
			AdditionalTips: []string{},
		}, nil)

		req, _ := http.NewRequest("POST", "/predict", strings.NewReader(`{"text":"hello"}`))
		w := httptest.NewRecorder()
		setupPredictRouter(uc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("missing text is passed as empty", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, withText("")).Return(nil, usecase.ErrEmptyText)

		w := postPredict(setupPredictRouter(uc), `{"message":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMPTY_TEXT")
		assert.Contains(t, w.Body.String(), MsgEmptyText)
	})

	t.Run("null text is passed as empty", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, withText("")).Return(nil, usecase.ErrEmptyText)

		w := postPredict(setupPredictRouter(uc), `{"text":null}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "EMPTY_TEXT")
	})

	t.Run("text too long", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, mock.Anything).Return(nil, usecase.ErrTextTooLong)

		w := postPredict(setupPredictRouter(uc), `{"text":"long"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Text too long. Please keep it under 1000 characters.")
	})

	t.Run("model unavailable", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, mock.Anything).Return(nil, usecase.ErrModelUnavailable)

		w := postPredict(setupPredictRouter(uc), `{"text":"hello"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), MsgModelUnavailable)
	})

	t.Run("classifier failure does not leak details", func(t *testing.T) {
		uc := new(MockPredictionUsecase)
		uc.On("Predict", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: %v", usecase.ErrClassificationFailed, "token sk-secret rejected"))

		w := postPredict(setupPredictRouter(uc), `{"text":"hello"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "CLASSIFIER_ERROR")
		assert.NotContains(t, w.Body.String(), "sk-secret")
	})

	t.Run("body over limit is rejected without calling usecase", func(t *testing.T) {
		uc := new(MockPredictionUsecase)

		big := `{"text":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		w := postPredict(setupPredictRouter(uc), big)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "TEXT_TOO_LONG")
		uc.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
	})
}

func TestPredictHandler_InvalidBody(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{name: "empty body", body: "", expectedMessage: MsgNoJSON},
		{name: "whitespace body", body: "  \n", expectedMessage: MsgNoJSON},
		{name: "null body", body: "null", expectedMessage: MsgNoJSON},
		{name: "empty object", body: "{}", expectedMessage: MsgNoJSON},
		{name: "malformed json", body: `{"text":`, expectedMessage: MsgInvalidJSON},
		{name: "empty array", body: "[]", expectedMessage: MsgNoJSON},
		{name: "zero", body: "0", expectedMessage: MsgNoJSON},
		{name: "false", body: "false", expectedMessage: MsgNoJSON},
		{name: "empty string", body: `""`, expectedMessage: MsgNoJSON},
		{name: "array body", body: `["hello"]`, expectedMessage: MsgInvalidJSON},
		{name: "number body", body: "42", expectedMessage: MsgInvalidJSON},
		{name: "true", body: "true", expectedMessage: MsgInvalidJSON},
		{name: "text is a number", body: `{"text":42}`, expectedMessage: MsgTextNotString},
		{name: "text is an object", body: `{"text":{"a":1}}`, expectedMessage: MsgTextNotString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockPredictionUsecase)

			w := postPredict(setupPredictRouter(uc), tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, CodeInvalidRequest, body.Code)
			assert.Equal(t, tt.expectedMessage, body.Error)
			assert.Equal(t, "req-123", body.RequestID)
			uc.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
		})
	}
}
