package scoring

import (
	"fmt"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
	"github.com/speakwise/intro-scorer/pkg/sentiment"
)

// Compound-score thresholds for the qualitative tone label.
const (
	tonePositiveMin = 0.3
	toneNegativeMax = -0.3
)

// scoreSentiment rescales the analyzer's compound polarity from [-1,1]
// onto [0,1].
func scoreSentiment(t entities.Transcript, analyzer sentiment.Analyzer) (float64, string) {
	if t.Empty() {
		return 0.5, "No text to evaluate - neutral tone assumed"
	}

	s := analyzer.Polarity(t.Text)
	sub := clamp01((s.Compound + 1) / 2)

	switch {
	case s.Compound >= tonePositiveMin:
		return sub, fmt.Sprintf("Positive and engaging tone (compound %.2f)", s.Compound)
	case s.Compound <= toneNegativeMax:
		return sub, fmt.Sprintf("Negative tone - try a more upbeat delivery (compound %.2f)", s.Compound)
	default:
		return sub, fmt.Sprintf("Neutral tone (compound %.2f)", s.Compound)
	}
}
