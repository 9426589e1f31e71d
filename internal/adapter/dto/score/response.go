package score

import "time"

// CriterionResponse is one rubric criterion in the report
type CriterionResponse struct {
	Criterion string  `json:"criterion"`
	Name      string  `json:"name"`
	Weight    int     `json:"weight"`
	SubScore  float64 `json:"sub_score"`
	Points    float64 `json:"points"`
	Feedback  string  `json:"feedback"`
}

// Response is the full report for POST /v1/score
type Response struct {
	ID            string              `json:"id"`
	Total         int                 `json:"total"`
	Grade         string              `json:"grade"`
	WordCount     int                 `json:"word_count"`
	SentenceCount int                 `json:"sentence_count"`
	Criteria      []CriterionResponse `json:"criteria"`
	CreatedAt     time.Time           `json:"created_at"`
}

// RubricResponse describes the fixed rubric for GET /v1/rubric
type RubricResponse struct {
	Weights map[string]int   `json:"weights"`
	Bands   []BandResponse   `json:"bands"`
	Fillers []string         `json:"fillers"`
	Content RubricContentDTO `json:"content"`
}

// BandResponse is one grade band with its inclusive lower bound
type BandResponse struct {
	Grade    string `json:"grade"`
	MinTotal int    `json:"min_total"`
}

// RubricContentDTO lists the keyword categories checked by the content
// criterion
type RubricContentDTO struct {
	Required []string `json:"required"`
	Bonus    []string `json:"bonus"`
}
