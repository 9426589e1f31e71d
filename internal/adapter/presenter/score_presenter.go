package presenter

import (
	"github.com/speakwise/intro-scorer/internal/adapter/dto/score"
	"github.com/speakwise/intro-scorer/internal/domain/entities"
	"github.com/speakwise/intro-scorer/internal/usecase/scoring"
)

// ToScoreResponse converts a ScoreReport entity to the score Response DTO
func ToScoreResponse(r *entities.ScoreReport) *score.Response {
	if r == nil {
		return nil
	}

	criteria := make([]score.CriterionResponse, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		criteria = append(criteria, score.CriterionResponse{
			Criterion: string(c.Criterion),
			Name:      c.Criterion.DisplayName(),
			Weight:    c.Weight,
			SubScore:  c.SubScore,
			Points:    c.Points,
			Feedback:  c.Feedback,
		})
	}

	return &score.Response{
		ID:            r.ID.String(),
		Total:         r.Total,
		Grade:         string(r.Grade),
		WordCount:     r.WordCount,
		SentenceCount: r.SentenceCount,
		Criteria:      criteria,
		CreatedAt:     r.CreatedAt,
	}
}

// ToRubricResponse converts the rubric configuration to its DTO
func ToRubricResponse(r *scoring.Rubric) *score.RubricResponse {
	if r == nil {
		return nil
	}

	weights := make(map[string]int, len(r.Weights))
	for c, w := range r.Weights {
		weights[string(c)] = w
	}

	required := make([]string, 0, len(r.MustKeywords))
	for _, c := range r.MustKeywords {
		required = append(required, c.Key)
	}
	bonus := make([]string, 0, len(r.BonusKeywords))
	for _, c := range r.BonusKeywords {
		bonus = append(bonus, c.Key)
	}

	return &score.RubricResponse{
		Weights: weights,
		Bands: []score.BandResponse{
			{Grade: string(entities.GradeExcellent), MinTotal: 85},
			{Grade: string(entities.GradeGood), MinTotal: 70},
			{Grade: string(entities.GradeFair), MinTotal: 55},
			{Grade: string(entities.GradeNeedsImprovement), MinTotal: 0},
		},
		Fillers: r.Fillers,
		Content: score.RubricContentDTO{
			Required: required,
			Bonus:    bonus,
		},
	}
}
