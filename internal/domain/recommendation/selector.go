// Package recommendation maps a classified sentiment onto a supportive
// message and a short list of suggested actions.
//
// Selection is a fixed decision table:
//
//	POSITIVE  confidence > 0.9          -> high-energy message
//	POSITIVE  otherwise                 -> positive message
//	NEGATIVE  anxiety keywords          -> anxiety message
//	NEGATIVE  sadness keywords          -> sadness message
//	NEGATIVE  anger keywords            -> anger message
//	NEGATIVE  otherwise                 -> general negative message
//	any other label                     -> mixed-feelings message
//
// Keyword checks are case-insensitive substring matches, so "download"
// counts as "down".
package recommendation

import (
	"strings"

	"github.com/AkshatRaj00/ai-companion-project/internal/domain/entity"
)

// HighConfidenceThreshold is the exclusive lower bound for the
// high-confidence positive branch.
const HighConfidenceThreshold = 0.9

// Branch names, reported alongside a selection for logging and metrics
const (
	BranchPositiveHigh = "positive_high"
	BranchPositive     = "positive"
	BranchNegative     = "negative"
	BranchMixed        = "mixed"
)

// Select returns the recommendation for a label, confidence and raw text.
func Select(label entity.Label, confidence float64, text string) entity.Recommendation {
	rec, _ := SelectWithBranch(label, confidence, text)
	return rec
}

// SelectWithBranch is Select plus the name of the table branch that matched.
func SelectWithBranch(label entity.Label, confidence float64, text string) (entity.Recommendation, string) {
	switch label {
	case entity.LabelPositive:
		if confidence > HighConfidenceThreshold {
			return clone(positiveHighConfidence), BranchPositiveHigh
		}
		return clone(positiveDefault), BranchPositive

	case entity.LabelNegative:
		lower := strings.ToLower(text)
		for _, rule := range negativeRules {
			if containsAny(lower, rule.keywords) {
				return clone(rule.rec), BranchNegative + "_" + rule.name
			}
		}
		return clone(negativeDefault), BranchNegative

	default:
		return clone(mixedDefault), BranchMixed
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// clone keeps callers from mutating the shared table
func clone(rec entity.Recommendation) entity.Recommendation {
	tips := make([]string, len(rec.Tips))
	copy(tips, rec.Tips)
	return entity.Recommendation{Message: rec.Message, Tips: tips}
}
