package scoring

import (
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// scoreSalutation checks the opening segment (first two sentences) for a
// greeting phrase. Credit is all-or-nothing; the phrase tier only shapes
// the feedback.
func scoreSalutation(t entities.Transcript, r *Rubric) (float64, string) {
	opening := t.Lower
	if len(t.Sentences) > 0 {
		limit := 2
		if len(t.Sentences) < limit {
			limit = len(t.Sentences)
		}
		opening = strings.ToLower(strings.Join(t.Sentences[:limit], ". "))
	}

	switch {
	case containsAny(opening, r.SalutationExcellent):
		return 1.0, "Enthusiastic salutation - great start"
	case containsAny(opening, r.SalutationGood):
		return 1.0, "Proper greeting"
	case containsAny(opening, r.SalutationBasic):
		return 1.0, "Basic greeting"
	default:
		return 0.0, "No greeting detected - started directly"
	}
}

// scoreFlow runs three structural checks: an early self-introduction, a
// body of enough sentences, and a closing phrase. The sub-score is the
// fraction of checks satisfied.
func scoreFlow(t entities.Transcript, r *Rubric) (float64, string) {
	var openingOK, bodyOK, closingOK bool

	if n := len(t.Sentences); n > 0 {
		limit := 2
		if n < limit {
			limit = n
		}
		early := strings.ToLower(strings.Join(t.Sentences[:limit], " "))
		openingOK = containsAny(early, r.OpeningPhrases)

		last := strings.ToLower(t.Sentences[n-1])
		closingOK = containsAny(last, r.ClosingWords)
	}
	bodyOK = t.SentenceCount >= r.MinBodySentences

	passed := 0
	parts := make([]string, 0, 3)
	if openingOK {
		passed++
		parts = append(parts, "good opening")
	}
	if bodyOK {
		passed++
		parts = append(parts, "middle content")
	}
	if closingOK {
		passed++
		parts = append(parts, "closing")
	}

	fb := strings.Join(parts, ", ")
	if fb == "" {
		fb = "Structure needs work: introduce yourself early, add detail, end with thanks"
	}
	return float64(passed) / 3.0, fb
}
