package entity

import "strings"

// Label is the sentiment class returned by a classifier
type Label string

// Known sentiment labels
const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// NormalizeLabel maps the label spellings used by common sentiment models
// onto the service labels. Unknown labels are upper-cased and passed through.
func NormalizeLabel(raw string) Label {
	l := strings.ToLower(strings.TrimSpace(raw))
	switch l {
	case "positive", "pos", "label_1":
		return LabelPositive
	case "negative", "neg", "label_0":
		return LabelNegative
	case "neutral", "label_2":
		return LabelNeutral
	default:
		return Label(strings.ToUpper(l))
	}
}

// IsKnown reports whether the label is one of the service labels
func (l Label) IsKnown() bool {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	default:
		return false
	}
}

// String returns the label as a string
func (l Label) String() string {
	return string(l)
}

// Sentiment is a classified label with its confidence score
type Sentiment struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// ClampScore limits a confidence score to the [0, 1] range
func ClampScore(score float64) float64 {
	switch {
	case score != score: // NaN
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
