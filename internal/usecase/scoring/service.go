package scoring

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
	"github.com/speakwise/intro-scorer/pkg/sentiment"
)

// ExtractorFunc is the common signature every criterion implements: a pure
// function of the normalized transcript and the rubric.
type ExtractorFunc func(t entities.Transcript, r *Rubric) (subscore float64, feedback string)

// extractor pairs a criterion with its scoring function.
type extractor struct {
	criterion entities.Criterion
	score     ExtractorFunc
}

// Service grades transcripts against the rubric
type Service interface {
	Score(ctx context.Context, text string, durationMinutes float64) (*entities.ScoreReport, error)
	Rubric() *Rubric
}

type scoringService struct {
	rubric     *Rubric
	analyzer   sentiment.Analyzer
	logger     *zap.Logger
	extractors []extractor
}

// NewService constructs a scoring service. The analyzer is the only
// external collaborator; everything else is fixed rubric configuration.
func NewService(rubric *Rubric, analyzer sentiment.Analyzer, logger *zap.Logger) Service {
	s := &scoringService{
		rubric:   rubric,
		analyzer: analyzer,
		logger:   logger,
	}
	// Fixed evaluation order, matching entities.CriterionOrder.
	s.extractors = []extractor{
		{entities.CriterionSalutation, scoreSalutation},
		{entities.CriterionContent, scoreContent},
		{entities.CriterionFlow, scoreFlow},
		{entities.CriterionSpeechRate, scoreSpeechRate},
		{entities.CriterionGrammar, scoreGrammar},
		{entities.CriterionVocabulary, scoreVocabulary},
		{entities.CriterionFillers, scoreFillers},
		{entities.CriterionSentiment, s.scoreSentiment},
	}
	return s
}

func (s *scoringService) Rubric() *Rubric {
	return s.rubric
}

// scoreSentiment adapts the analyzer-backed extractor to ExtractorFunc.
func (s *scoringService) scoreSentiment(t entities.Transcript, _ *Rubric) (float64, string) {
	return scoreSentiment(t, s.analyzer)
}

// Score runs every extractor in fixed order and aggregates the weighted
// sub-scores into a 0-100 total. It never fails on transcript content; the
// error return only reports an already-cancelled context.
func (s *scoringService) Score(ctx context.Context, text string, durationMinutes float64) (*entities.ScoreReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := Normalize(text, durationMinutes)

	report := entities.NewScoreReport()
	report.WordCount = t.WordCount
	report.SentenceCount = t.SentenceCount

	total := 0.0
	for _, ex := range s.extractors {
		sub, fb := ex.score(t, s.rubric)
		sub = clamp01(sub)
		weight := s.rubric.Weight(ex.criterion)
		points := sub * float64(weight)
		total += points

		report.Criteria = append(report.Criteria, entities.CriterionResult{
			Criterion: ex.criterion,
			Weight:    weight,
			SubScore:  sub,
			Points:    points,
			Feedback:  fb,
		})
	}

	report.Total = clampTotal(int(math.Round(total)))
	report.Grade = entities.GradeFor(report.Total)

	if s.logger != nil {
		s.logger.Info("transcript scored",
			zap.String("report_id", report.ID.String()),
			zap.Int("total", report.Total),
			zap.String("grade", string(report.Grade)),
			zap.Int("word_count", report.WordCount),
			zap.Float64("duration_minutes", durationMinutes),
		)
	}
	return report, nil
}

func clampTotal(total int) int {
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}
