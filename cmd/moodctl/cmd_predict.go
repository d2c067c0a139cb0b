package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AkshatRaj00/ai-companion-project/internal/adapter/http/handler"
	"github.com/AkshatRaj00/ai-companion-project/internal/app"
	"github.com/AkshatRaj00/ai-companion-project/internal/infrastructure/config"
	"github.com/AkshatRaj00/ai-companion-project/internal/usecase"
)

// predictCmd classifies text and prints the full prediction
var predictCmd = &cobra.Command{
	Use:   "predict [text]",
	Short: "Classify text and print the recommendation",
	Long: `Runs the same validation, classification and recommendation steps as
POST /predict and prints the response body as JSON.

Example:
  moodctl predict "I'm so anxious about tomorrow"
  moodctl predict --provider mlservice "what a great day"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if provider != "" {
		cfg.Classifier.Provider = provider
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithTimeout(baseCtx, timeout)
	defer cancel()

	components := app.Build(ctx, cfg, logger, nil)
	defer components.Close()

	return predict(ctx, cmd, components.PredictionUC, strings.Join(args, " "))
}

func predict(ctx context.Context, cmd *cobra.Command, uc usecase.PredictionUsecase, text string) error {
	requestID := uuid.New().String()

	output, err := uc.Predict(ctx, &usecase.PredictInput{Text: text, RequestID: requestID})
	if err != nil {
		m := handler.MapUsecaseError(err, uc.MaxTextLength())
		return fmt.Errorf("%s: %s", m.Code, m.Message)
	}

	return writeJSON(cmd, handler.PredictResponse{
		Sentiment:       output.Sentiment.String(),
		Recommendation:  output.Recommendation,
		ConfidenceScore: output.ConfidenceScore,
		AdditionalTips:  output.AdditionalTips,
		ModelVersion:    output.ModelVersion,
		Cached:          output.Cached,
		Status:          handler.StatusSuccess,
		RequestID:       requestID,
	})
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
