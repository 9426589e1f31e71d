package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/speakwise/intro-scorer/errors"
	scoredto "github.com/speakwise/intro-scorer/internal/adapter/dto/score"
	"github.com/speakwise/intro-scorer/internal/adapter/presenter"
	"github.com/speakwise/intro-scorer/internal/usecase/scoring"
)

// ScoreController handles transcript scoring endpoints
type ScoreController struct {
	svc    scoring.Service
	logger *zap.Logger
}

// NewScoreController creates a new score controller
func NewScoreController(svc scoring.Service, logger *zap.Logger) *ScoreController {
	return &ScoreController{svc: svc, logger: logger}
}

// ScoreTranscript grades one transcript
// @Summary      Score a self-introduction transcript
// @Description  Grades the transcript against the fixed 8-criterion rubric and returns a 0-100 total with per-criterion feedback
// @Tags         Scoring
// @Accept       json
// @Produce      json
// @Param        request  body      scoredto.Request  true  "Transcript and spoken duration in minutes"
// @Success      200      {object}  map[string]interface{}  "Score report"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Router       /score [post]
func (sc *ScoreController) ScoreTranscript(c echo.Context) error {
	var req scoredto.Request
	if err := c.Bind(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload(err))
	}

	report, err := sc.svc.Score(c.Request().Context(), req.Transcript, req.DurationMinutes)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(sc.logger, c, presenter.ToScoreResponse(report))
}

// GetRubric returns the fixed rubric
// @Summary      Describe the scoring rubric
// @Description  Returns the criterion weights, grade bands, filler list and keyword category names
// @Tags         Scoring
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Rubric description"
// @Router       /rubric [get]
func (sc *ScoreController) GetRubric(c echo.Context) error {
	return HandleSuccess(sc.logger, c, presenter.ToRubricResponse(sc.svc.Rubric()))
}
