package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/recommendation"
)

var (
	recommendLabel string
	recommendScore float64
)

// recommendCmd runs only the recommendation selector, without a model
var recommendCmd = &cobra.Command{
	Use:   "recommend [text]",
	Short: "Select a recommendation for a known label and score",
	Long: `Looks up the recommendation for a sentiment label, confidence score and
text without calling any classifier.

Examples:
  moodctl recommend --label POSITIVE --score 0.95 "great news"
  moodctl recommend -l NEGATIVE -s 0.8 "I feel so down"`,
	Args: cobra.ArbitraryArgs,
	RunE: runRecommend,
}

// RecommendOutput is printed by the recommend command
type RecommendOutput struct {
	Sentiment       string   `json:"sentiment"`
	ConfidenceScore float64  `json:"confidence_score"`
	Recommendation  string   `json:"recommendation"`
	AdditionalTips  []string `json:"additional_tips"`
	Branch          string   `json:"branch"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendScore < 0 || recommendScore > 1 {
		return fmt.Errorf("score must be within [0,1], got %g", recommendScore)
	}

	label := entity.NormalizeLabel(recommendLabel)
	text := strings.Join(args, " ")

	rec, branch := recommendation.SelectWithBranch(label, recommendScore, text)
	logger.Debug("Recommendation selected", zap.String("branch", branch))

	return writeJSON(cmd, RecommendOutput{
		Sentiment:       label.String(),
		ConfidenceScore: recommendScore,
		Recommendation:  rec.Message,
		AdditionalTips:  rec.Tips,
		Branch:          branch,
	})
}
