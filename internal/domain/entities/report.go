package entities

import (
	"time"

	"github.com/google/uuid"
)

// Criterion identifies one of the eight rubric criteria. Values double as
// the stable keys used in API responses, in fixed report order.
type Criterion string

const (
	CriterionSalutation Criterion = "salutation"
	CriterionContent    Criterion = "content"
	CriterionFlow       Criterion = "flow"
	CriterionSpeechRate Criterion = "speech_rate"
	CriterionGrammar    Criterion = "grammar"
	CriterionVocabulary Criterion = "vocabulary"
	CriterionFillers    Criterion = "fillers"
	CriterionSentiment  Criterion = "sentiment"
)

// CriterionOrder is the fixed order in which criteria are evaluated and
// reported.
var CriterionOrder = []Criterion{
	CriterionSalutation,
	CriterionContent,
	CriterionFlow,
	CriterionSpeechRate,
	CriterionGrammar,
	CriterionVocabulary,
	CriterionFillers,
	CriterionSentiment,
}

// DisplayName returns the human-readable label for a criterion.
func (c Criterion) DisplayName() string {
	switch c {
	case CriterionSalutation:
		return "Salutation"
	case CriterionContent:
		return "Content & Keywords"
	case CriterionFlow:
		return "Flow & Structure"
	case CriterionSpeechRate:
		return "Speech Rate"
	case CriterionGrammar:
		return "Grammar & Language"
	case CriterionVocabulary:
		return "Vocabulary Richness"
	case CriterionFillers:
		return "Clarity (Filler Words)"
	case CriterionSentiment:
		return "Engagement & Positivity"
	default:
		return string(c)
	}
}

// GradeBand is the qualitative label derived from the total score.
type GradeBand string

const (
	GradeExcellent        GradeBand = "Excellent"
	GradeGood             GradeBand = "Good"
	GradeFair             GradeBand = "Fair"
	GradeNeedsImprovement GradeBand = "Needs Improvement"
)

// GradeFor maps a total score to its band. Boundaries are closed at the
// lower edge: 85 is Excellent, 70 is Good, 55 is Fair.
func GradeFor(total int) GradeBand {
	switch {
	case total >= 85:
		return GradeExcellent
	case total >= 70:
		return GradeGood
	case total >= 55:
		return GradeFair
	default:
		return GradeNeedsImprovement
	}
}

// CriterionResult is the outcome of one extractor run.
type CriterionResult struct {
	Criterion Criterion `json:"criterion"`
	Weight    int       `json:"weight"`
	// SubScore is the normalized result in [0,1] before weighting.
	SubScore float64 `json:"sub_score"`
	// Points is SubScore * Weight, the criterion's contribution to the total.
	Points   float64 `json:"points"`
	Feedback string  `json:"feedback"`
}

// ScoreReport is the complete grading outcome for one transcript.
type ScoreReport struct {
	ID            uuid.UUID         `json:"id"`
	Total         int               `json:"total"`
	Grade         GradeBand         `json:"grade"`
	WordCount     int               `json:"word_count"`
	SentenceCount int               `json:"sentence_count"`
	Criteria      []CriterionResult `json:"criteria"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewScoreReport creates an empty report with a fresh id.
func NewScoreReport() *ScoreReport {
	return &ScoreReport{
		ID:        uuid.New(),
		Criteria:  make([]CriterionResult, 0, len(CriterionOrder)),
		CreatedAt: time.Now(),
	}
}

// Result returns the result for the given criterion, if present.
func (r *ScoreReport) Result(c Criterion) (CriterionResult, bool) {
	for _, cr := range r.Criteria {
		if cr.Criterion == c {
			return cr, true
		}
	}
	return CriterionResult{}, false
}
