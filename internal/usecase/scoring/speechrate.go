package scoring

import (
	"fmt"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// Speech-rate bands in words per minute. 100-150 is the ideal range;
// sub-scores step down as WPM drifts outside it.
const (
	rateIdealLow   = 100.0
	rateIdealHigh  = 150.0
	rateGoodLow    = 80.0
	rateGoodHigh   = 170.0
	rateOKLow      = 60.0
	rateOKHigh     = 190.0
	rateFloorScore = 0.4
)

// scoreSpeechRate maps words-per-minute onto the band table. A missing
// duration is not an error: it yields the neutral default with a note.
func scoreSpeechRate(t entities.Transcript, r *Rubric) (float64, string) {
	if t.DurationMinutes <= 0 {
		return r.NeutralRateScore, "Duration not provided - pace not evaluated"
	}

	wpm := float64(t.WordCount) / t.DurationMinutes

	var sub float64
	switch {
	case wpm >= rateIdealLow && wpm <= rateIdealHigh:
		sub = 1.0
	case (wpm >= rateGoodLow && wpm < rateIdealLow) || (wpm > rateIdealHigh && wpm <= rateGoodHigh):
		sub = 0.8
	case (wpm >= rateOKLow && wpm < rateGoodLow) || (wpm > rateGoodHigh && wpm <= rateOKHigh):
		sub = 0.6
	default:
		sub = rateFloorScore
	}

	switch {
	case wpm < rateIdealLow:
		return sub, fmt.Sprintf("Too slow: %.1f WPM (aim for %.0f-%.0f)", wpm, rateIdealLow, rateIdealHigh)
	case wpm > rateIdealHigh:
		return sub, fmt.Sprintf("Too fast: %.1f WPM (aim for %.0f-%.0f)", wpm, rateIdealLow, rateIdealHigh)
	default:
		return sub, fmt.Sprintf("Ideal pace: %.1f WPM", wpm)
	}
}
