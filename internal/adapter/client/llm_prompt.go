package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
	"github.com/AkshatRaj00/ai-companion-project/internal/domain/service"
)

// sentimentSystemPrompt asks a general-purpose LLM to behave like a
// binary sentiment classifier with a confidence score.
const sentimentSystemPrompt = `You are a sentiment classifier.
Classify the overall sentiment of the user's text as POSITIVE or NEGATIVE.
Use NEUTRAL only when the text carries no sentiment at all.
Respond with a single JSON object and nothing else:
{"label": "POSITIVE" | "NEGATIVE" | "NEUTRAL", "score": <confidence between 0 and 1>}`

type llmVerdict struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// parseVerdict decodes the model's JSON answer, tolerating code fences
func parseVerdict(content, model string) (*service.ClassificationResult, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var v llmVerdict
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, fmt.Errorf("failed to decode classifier verdict: %w", err)
	}
	if strings.TrimSpace(v.Label) == "" {
		return nil, fmt.Errorf("classifier verdict has no label")
	}

	return &service.ClassificationResult{
		Label:        entity.NormalizeLabel(v.Label),
		Score:        entity.ClampScore(v.Score),
		ModelVersion: model,
	}, nil
}
