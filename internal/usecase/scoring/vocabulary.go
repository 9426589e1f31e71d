package scoring

import (
	"fmt"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// Vocabulary richness tiers by type-token ratio. Short transcripts are
// low-confidence: their TTR is inflated, so the sub-score is capped.
const shortTextTTRCap = 0.6

// scoreVocabulary grades the type-token ratio against fixed tiers.
func scoreVocabulary(t entities.Transcript, r *Rubric) (float64, string) {
	if t.Empty() {
		return 0, "No words to evaluate"
	}

	ttr := float64(t.UniqueWords) / float64(t.SafeWordCount())

	var sub float64
	var label string
	switch {
	case ttr >= 0.75:
		sub, label = 1.0, "Excellent"
	case ttr >= 0.65:
		sub, label = 0.867, "Very good"
	case ttr >= 0.55:
		sub, label = 0.733, "Good"
	case ttr >= 0.45:
		sub, label = 0.6, "Fair"
	default:
		sub, label = 0.467, "Basic"
	}

	if float64(t.WordCount) < r.MinWordsForTTR {
		if sub > shortTextTTRCap {
			sub = shortTextTTRCap
		}
		return sub, fmt.Sprintf("Too short to judge vocabulary reliably - TTR %.2f (%d/%d words)", ttr, t.UniqueWords, t.WordCount)
	}

	return sub, fmt.Sprintf("%s variety - TTR %.2f (%d/%d words)", label, ttr, t.UniqueWords, t.WordCount)
}
