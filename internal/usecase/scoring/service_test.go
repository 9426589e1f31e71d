package scoring

import (
	"context"
	"strings"
	"testing"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
	"github.com/speakwise/intro-scorer/pkg/config"
	"github.com/speakwise/intro-scorer/pkg/sentiment"
)

// stubAnalyzer returns a fixed polarity so service tests stay deterministic
// without the lexicon.
type stubAnalyzer struct {
	compound float64
}

func (s stubAnalyzer) Polarity(string) sentiment.Score {
	return sentiment.Score{Compound: s.compound}
}

func newTestService(t *testing.T, compound float64) Service {
	t.Helper()
	return NewService(DefaultRubric(), stubAnalyzer{compound: compound}, nil)
}

func TestRubricWeightsSumTo100(t *testing.T) {
	r, err := NewRubric(config.RubricConfig{
		GrammarPenalty:   0.5,
		FillerPenalty:    2.0,
		MinWordsForTTR:   20,
		NeutralRateScore: 0.8,
	})
	if err != nil {
		t.Fatalf("NewRubric: %v", err)
	}

	sum := 0
	for _, w := range r.Weights {
		sum += w
	}
	if sum != 100 {
		t.Fatalf("weights sum = %d, want 100", sum)
	}
	if len(r.Weights) != len(entities.CriterionOrder) {
		t.Fatalf("weight table has %d entries, want %d", len(r.Weights), len(entities.CriterionOrder))
	}
	if w := r.Weight(entities.CriterionContent); w != 30 {
		t.Errorf("content weight = %d, want 30", w)
	}
}

func TestScore_ReportShape(t *testing.T) {
	svc := newTestService(t, 0.5)
	report, err := svc.Score(context.Background(), "Hello everyone, my name is Ravi. Thank you.", 1)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if len(report.Criteria) != 8 {
		t.Fatalf("criteria count = %d, want 8", len(report.Criteria))
	}
	for i, c := range report.Criteria {
		if c.Criterion != entities.CriterionOrder[i] {
			t.Errorf("criteria[%d] = %q, want %q", i, c.Criterion, entities.CriterionOrder[i])
		}
		if c.SubScore < 0 || c.SubScore > 1 {
			t.Errorf("%s sub-score %f out of [0,1]", c.Criterion, c.SubScore)
		}
		if c.Feedback == "" {
			t.Errorf("%s has empty feedback", c.Criterion)
		}
	}
	if report.Total < 0 || report.Total > 100 {
		t.Errorf("total %d out of [0,100]", report.Total)
	}
	if report.Grade != entities.GradeFor(report.Total) {
		t.Errorf("grade %q does not match total %d", report.Grade, report.Total)
	}
}

func TestScore_AshaScenario(t *testing.T) {
	svc := newTestService(t, 0.5)
	text := "Hello everyone, my name is Asha, I am 21 years old, I enjoy painting, thank you."
	report, err := svc.Score(context.Background(), text, 0.5)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if report.WordCount != 16 {
		t.Errorf("word count = %d, want 16", report.WordCount)
	}

	sal, _ := report.Result(entities.CriterionSalutation)
	if sal.SubScore != 1.0 {
		t.Errorf("salutation sub = %f, want full credit", sal.SubScore)
	}

	content, _ := report.Result(entities.CriterionContent)
	if content.SubScore != 0.5 {
		t.Errorf("content sub = %f, want 0.5 (family, school, class missing)", content.SubScore)
	}

	rate, _ := report.Result(entities.CriterionSpeechRate)
	if rate.SubScore != 0.4 {
		t.Errorf("speech rate sub = %f, want floor 0.4 (32 WPM)", rate.SubScore)
	}
	if !strings.Contains(rate.Feedback, "Too slow") {
		t.Errorf("rate feedback = %q", rate.Feedback)
	}

	flow, _ := report.Result(entities.CriterionFlow)
	if flow.SubScore <= 0 || flow.SubScore >= 1 {
		t.Errorf("flow sub = %f, want partial credit", flow.SubScore)
	}

	if report.Total >= 85 {
		t.Errorf("total = %d, want substantially below 85", report.Total)
	}
	// 5 + 15 + 5*(2/3) + 4 + 15 + 9 + 10 + 7.5 = 68.83, rounded up.
	if report.Total != 69 {
		t.Errorf("total = %d, want 69", report.Total)
	}
	if report.Grade != entities.GradeFair {
		t.Errorf("grade = %q, want Fair", report.Grade)
	}
}

func TestScore_EmptyInput(t *testing.T) {
	svc := newTestService(t, 0)
	report, err := svc.Score(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Score on empty input must not fail: %v", err)
	}

	if len(report.Criteria) != 8 {
		t.Fatalf("criteria count = %d, want 8", len(report.Criteria))
	}
	for _, c := range report.Criteria {
		if c.Feedback == "" {
			t.Errorf("%s has empty feedback", c.Criterion)
		}
	}

	// Only the neutral defaults (speech rate without duration, neutral
	// sentiment) contribute: 0.8*10 + 0.5*10.
	if report.Total != 13 {
		t.Errorf("total = %d, want 13", report.Total)
	}
	if report.Grade != entities.GradeNeedsImprovement {
		t.Errorf("grade = %q", report.Grade)
	}
}

func TestScore_Deterministic(t *testing.T) {
	svc := newTestService(t, 0.3)
	text := "Good morning everyone, myself Ravi. I am twelve years old. I enjoy chess. Thank you."

	first, err := svc.Score(context.Background(), text, 0.75)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	second, err := svc.Score(context.Background(), text, 0.75)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if first.Total != second.Total || first.Grade != second.Grade {
		t.Fatalf("totals differ: %d/%s vs %d/%s", first.Total, first.Grade, second.Total, second.Grade)
	}
	for i := range first.Criteria {
		a, b := first.Criteria[i], second.Criteria[i]
		if a.SubScore != b.SubScore || a.Feedback != b.Feedback || a.Points != b.Points {
			t.Errorf("criterion %s differs between runs: %+v vs %+v", a.Criterion, a, b)
		}
	}
}

func TestScore_CancelledContext(t *testing.T) {
	svc := newTestService(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Score(ctx, "hello", 1); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestScore_PerfectTranscript(t *testing.T) {
	svc := newTestService(t, 0.9)
	// Covers every rubric category, ideal pace, clean grammar, varied words.
	text := "Good morning everyone, I am excited to introduce myself, my name is Muskan and I study in class eight at Christ Public School. " +
		"I am thirteen years old and I live with my kind, caring family in Delhi. " +
		"My favourite hobby is playing cricket and I also enjoy painting landscapes during quiet weekend afternoons. " +
		"A fun fact about me is that I once won a special award for a science project about renewable energy. " +
		"My dream is to become an engineer and build helpful machines for farmers. " +
		"Thank you for listening."
	report, err := svc.Score(context.Background(), text, 1.0)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if report.Total < 85 {
		t.Errorf("total = %d, want Excellent band", report.Total)
	}
	if report.Grade != entities.GradeExcellent {
		t.Errorf("grade = %q, want Excellent", report.Grade)
	}
}

func TestExtractorFeedbackIsPure(t *testing.T) {
	r := DefaultRubric()
	tr := Normalize("Hello everyone, my name is Asha, I enjoy painting, thank you.", 0.5)

	extractors := map[string]ExtractorFunc{
		"salutation": scoreSalutation,
		"content":    scoreContent,
		"flow":       scoreFlow,
		"rate":       scoreSpeechRate,
		"grammar":    scoreGrammar,
		"vocabulary": scoreVocabulary,
		"fillers":    scoreFillers,
	}
	for name, fn := range extractors {
		s1, f1 := fn(tr, r)
		s2, f2 := fn(tr, r)
		if s1 != s2 || f1 != f2 {
			t.Errorf("%s is not pure: (%f,%q) vs (%f,%q)", name, s1, f1, s2, f2)
		}
	}
}
