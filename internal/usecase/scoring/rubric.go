package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
	"github.com/speakwise/intro-scorer/pkg/config"
)

// KeywordCategory is one named group of interchangeable terms. A category
// counts as covered when any of its terms appears in the transcript,
// regardless of repetition.
type KeywordCategory struct {
	Key   string
	Terms []string
}

// Rubric is the read-only scoring configuration shared by all extractors.
// It is built once at startup and never mutated.
type Rubric struct {
	Weights map[entities.Criterion]int

	MustKeywords  []KeywordCategory
	BonusKeywords []KeywordCategory
	// BonusPerCategory is the sub-score increment per covered bonus
	// category, capped at BonusCategoryCap categories.
	BonusPerCategory float64
	BonusCategoryCap int

	SalutationExcellent []string
	SalutationGood      []string
	SalutationBasic     []string

	OpeningPhrases   []string
	ClosingWords     []string
	MinBodySentences int

	Fillers   []string
	fillerRes map[string]*regexp.Regexp

	GrammarPenalty   float64
	FillerPenalty    float64
	MinWordsForTTR   float64
	NeutralRateScore float64

	standaloneLowerI *regexp.Regexp
	lowerAfterStop   *regexp.Regexp
	doubleSpace      *regexp.Regexp
}

// NewRubric builds the rubric from the fixed keyword lists and the tunable
// thresholds in cfg. It fails if the criterion weights do not sum to 100.
func NewRubric(cfg config.RubricConfig) (*Rubric, error) {
	r := &Rubric{
		Weights: map[entities.Criterion]int{
			entities.CriterionSalutation: 5,
			entities.CriterionContent:    30,
			entities.CriterionFlow:       5,
			entities.CriterionSpeechRate: 10,
			entities.CriterionGrammar:    15,
			entities.CriterionVocabulary: 15,
			entities.CriterionFillers:    10,
			entities.CriterionSentiment:  10,
		},
		MustKeywords: []KeywordCategory{
			{Key: "name", Terms: []string{"name", "myself", "i am", "i'm", "call me"}},
			{Key: "age", Terms: []string{"age", "years old", "year old"}},
			{Key: "school", Terms: []string{"school", "studying", "student"}},
			{Key: "class", Terms: []string{"class", "grade", "standard", "section"}},
			{Key: "family", Terms: []string{"family", "father", "mother", "parents", "brother", "sister"}},
			{Key: "hobbies", Terms: []string{"hobby", "hobbies", "enjoy", "like", "love", "interest", "favorite", "favourite", "play"}},
		},
		BonusKeywords: []KeywordCategory{
			{Key: "family_details", Terms: []string{"kind", "caring", "loving", "supportive"}},
			{Key: "location", Terms: []string{"from", "live in", "belong"}},
			{Key: "goals", Terms: []string{"ambition", "goal", "dream", "want to", "aspire", "hope"}},
			{Key: "unique", Terms: []string{"fun fact", "special", "unique", "interesting"}},
			{Key: "achievements", Terms: []string{"achievement", "award", "won", "proud"}},
		},
		BonusPerCategory: 0.05,
		BonusCategoryCap: 5,

		SalutationExcellent: []string{"i am excited", "feeling great", "pleased to introduce"},
		SalutationGood:      []string{"good morning", "good afternoon", "good evening", "good day", "hello everyone", "greetings"},
		SalutationBasic:     []string{"hi", "hello", "hey"},

		OpeningPhrases:   []string{"name", "myself", "i am", "i'm"},
		ClosingWords:     []string{"thank", "thanks", "listening", "attention"},
		MinBodySentences: 4,

		Fillers: []string{
			"um", "uh", "like", "you know", "so", "actually", "basically",
			"right", "i mean", "well", "kinda", "sort of", "okay", "hmm", "ah",
		},

		GrammarPenalty:   cfg.GrammarPenalty,
		FillerPenalty:    cfg.FillerPenalty,
		MinWordsForTTR:   float64(cfg.MinWordsForTTR),
		NeutralRateScore: cfg.NeutralRateScore,

		standaloneLowerI: regexp.MustCompile(`\bi\b`),
		lowerAfterStop:   regexp.MustCompile(`[.!?]\s+[a-z]`),
		doubleSpace:      regexp.MustCompile(`[^\S\n]{2,}`),
	}

	sum := 0
	for _, w := range r.Weights {
		sum += w
	}
	if sum != 100 {
		return nil, fmt.Errorf("criterion weights sum to %d, want 100", sum)
	}

	r.fillerRes = make(map[string]*regexp.Regexp, len(r.Fillers))
	for _, f := range r.Fillers {
		r.fillerRes[f] = regexp.MustCompile(`\b` + regexp.QuoteMeta(f) + `\b`)
	}
	return r, nil
}

// DefaultRubric builds the rubric with the default thresholds. It panics on
// error because the fixed tables are known-good; use NewRubric when
// thresholds come from the environment.
func DefaultRubric() *Rubric {
	r, err := NewRubric(config.RubricConfig{
		GrammarPenalty:   0.5,
		FillerPenalty:    2.0,
		MinWordsForTTR:   20,
		NeutralRateScore: 0.8,
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Weight returns the fixed weight for a criterion.
func (r *Rubric) Weight(c entities.Criterion) int {
	return r.Weights[c]
}

// containsAny reports whether any of the terms occurs in the lower-cased
// text. Matching is plain substring matching, as category terms are short
// phrases.
func containsAny(lower string, terms []string) bool {
	for _, k := range terms {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// coveredCategories returns the keys of the categories with at least one
// term present, in rubric order.
func coveredCategories(lower string, cats []KeywordCategory) []string {
	found := make([]string, 0, len(cats))
	for _, c := range cats {
		if containsAny(lower, c.Terms) {
			found = append(found, c.Key)
		}
	}
	return found
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
