package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/recommendation"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/repository"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/logger"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/metrics"
)

// Error definitions for prediction usecase
var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrEmptyText            = errors.New("text is empty")
	ErrTextTooLong          = errors.New("text too long")
	ErrModelUnavailable     = errors.New("sentiment model not available")
	ErrClassificationFailed = errors.New("sentiment classification failed")
)

// DefaultMaxTextLength is the input limit in characters
const DefaultMaxTextLength = 1000

const logPreviewLength = 50

// unknownLabel is the metric label for classifier labels the service does not know
const unknownLabel = "UNKNOWN"

// PredictInput represents the input for a prediction
type PredictInput struct {
	Text      string
	RequestID string
}

// PredictOutput represents the prediction result
type PredictOutput struct {
	Sentiment       entity.Label `json:"sentiment"`
	Recommendation  string       `json:"recommendation"`
	ConfidenceScore float64      `json:"confidence_score"`
	AdditionalTips  []string     `json:"additional_tips"`
	ModelVersion    string       `json:"model_version,omitempty"`
	Cached          bool         `json:"cached"`
}

// Recorder receives prediction metrics
type Recorder interface {
	IncPrediction(label, outcome string)
	ObserveClassifier(provider string, d time.Duration)
	IncCacheLookup(hit bool)
	IncRecommendation(branch string)
}

// PredictionUsecase defines the interface for prediction business logic
type PredictionUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
	MaxTextLength() int
}

// PredictionConfig wires the prediction usecase. Classifier and Cache may be
// nil: without a classifier every prediction fails with ErrModelUnavailable,
// without a cache every call goes to the classifier.
type PredictionConfig struct {
	Classifier    service.Classifier
	Cache         repository.ClassificationCache
	Recorder      Recorder
	Logger        *zap.Logger
	MaxTextLength int
}

type predictionUsecase struct {
	classifier    service.Classifier
	cache         repository.ClassificationCache
	recorder      Recorder
	logger        *zap.Logger
	maxTextLength int
}

// NewPredictionUsecase creates a new prediction usecase
func NewPredictionUsecase(cfg PredictionConfig) PredictionUsecase {
	uc := &predictionUsecase{
		classifier:    cfg.Classifier,
		cache:         cfg.Cache,
		recorder:      cfg.Recorder,
		logger:        cfg.Logger,
		maxTextLength: cfg.MaxTextLength,
	}
	if uc.recorder == nil {
		uc.recorder = (*metrics.Metrics)(nil)
	}
	if uc.logger == nil {
		uc.logger = zap.NewNop()
	}
	if uc.maxTextLength <= 0 {
		uc.maxTextLength = DefaultMaxTextLength
	}
	return uc
}

func (u *predictionUsecase) MaxTextLength() int {
	return u.maxTextLength
}

func (u *predictionUsecase) Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error) {
	if input == nil {
		u.recorder.IncPrediction("", metrics.OutcomeRejected)
		return nil, ErrInvalidRequest
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		u.recorder.IncPrediction("", metrics.OutcomeRejected)
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(text) > u.maxTextLength {
		u.recorder.IncPrediction("", metrics.OutcomeRejected)
		return nil, ErrTextTooLong
	}

	if u.classifier == nil {
		u.recorder.IncPrediction("", metrics.OutcomeModelUnavailable)
		return nil, ErrModelUnavailable
	}

	log := u.logger.With(zap.String("request_id", input.RequestID))
	log.Info("Analyzing text", zap.String("text", logger.TruncateText(text, logPreviewLength)))

	result, cached, err := u.classify(ctx, log, text, input.RequestID)
	if err != nil {
		u.recorder.IncPrediction("", metrics.OutcomeClassifierError)
		log.Error("Sentiment classification failed",
			zap.String("provider", u.classifier.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrClassificationFailed, err)
	}

	rec, branch := recommendation.SelectWithBranch(result.Label, result.Score, text)
	u.recorder.IncRecommendation(branch)
	u.recorder.IncPrediction(metricLabel(result.Label), metrics.OutcomeSuccess)

	log.Info("Analysis result",
		zap.String("sentiment", result.Label.String()),
		zap.Float64("confidence", result.Score),
		zap.String("branch", branch),
		zap.Bool("cached", cached),
	)

	return &PredictOutput{
		Sentiment:       result.Label,
		Recommendation:  rec.Message,
		ConfidenceScore: result.Score,
		AdditionalTips:  rec.Tips,
		ModelVersion:    result.ModelVersion,
		Cached:          cached,
	}, nil
}

// classify consults the cache before the classifier. Cache failures are
// logged and never fail the prediction.
func (u *predictionUsecase) classify(ctx context.Context, log *zap.Logger, text, requestID string) (*service.ClassificationResult, bool, error) {
	provider := u.classifier.Name()

	if u.cache != nil {
		hit, ok, err := u.cache.Get(ctx, provider, text)
		if err != nil {
			log.Warn("Classification cache read failed", zap.Error(err))
		} else {
			u.recorder.IncCacheLookup(ok)
			if ok {
				return hit, true, nil
			}
		}
	}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, text, requestID)
	u.recorder.ObserveClassifier(provider, time.Since(start))
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		return nil, false, errors.New("classifier returned no result")
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, provider, text, result); err != nil {
			log.Warn("Classification cache write failed", zap.Error(err))
		}
	}

	return result, false, nil
}

// metricLabel folds labels outside the service vocabulary into one value
func metricLabel(label entity.Label) string {
	if !label.IsKnown() {
		return unknownLabel
	}
	return label.String()
}
