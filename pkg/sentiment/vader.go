package sentiment

import (
	"github.com/jonreiter/govader"
)

// Score is the polarity result for one piece of text.
type Score struct {
	// Compound is the normalized aggregate polarity in [-1, 1].
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// Analyzer scores the overall polarity of a text. The scoring pipeline only
// depends on this interface so tests can substitute a fixed-output stub.
type Analyzer interface {
	Polarity(text string) Score
}

// VaderAnalyzer wraps the VADER lexicon scorer.
type VaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer builds the lexicon once; the returned analyzer is safe
// for reuse across requests.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity implements Analyzer.
func (a *VaderAnalyzer) Polarity(text string) Score {
	s := a.sia.PolarityScores(text)
	return Score{
		Compound: s.Compound,
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
	}
}
