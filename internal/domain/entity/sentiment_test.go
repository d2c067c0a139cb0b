package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw      string
		expected Label
	}{
		{raw: "POSITIVE", expected: LabelPositive},
		{raw: "positive", expected: LabelPositive},
		{raw: " Pos ", expected: LabelPositive},
		{raw: "LABEL_1", expected: LabelPositive},
		{raw: "NEGATIVE", expected: LabelNegative},
		{raw: "neg", expected: LabelNegative},
		{raw: "LABEL_0", expected: LabelNegative},
		{raw: "Neutral", expected: LabelNeutral},
		{raw: "label_2", expected: LabelNeutral},
		{raw: "mixed", expected: Label("MIXED")},
		{raw: "", expected: Label("")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLabel(tt.raw))
		})
	}
}

func TestLabel_IsKnown(t *testing.T) {
	assert.True(t, LabelPositive.IsKnown())
	assert.True(t, LabelNegative.IsKnown())
	assert.True(t, LabelNeutral.IsKnown())
	assert.False(t, Label("MIXED").IsKnown())
	assert.False(t, Label("").IsKnown())
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, ClampScore(-0.3))
	assert.Equal(t, 1.0, ClampScore(1.7))
	assert.Equal(t, 0.42, ClampScore(0.42))
	assert.Equal(t, 0.0, ClampScore(math.NaN()))
}
