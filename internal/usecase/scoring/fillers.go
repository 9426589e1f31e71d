package scoring

import (
	"fmt"
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// scoreFillers counts whole-word filler matches and applies a linear
// per-word penalty. Whole-word matching keeps "um" from matching inside
// "umbrella".
func scoreFillers(t entities.Transcript, r *Rubric) (float64, string) {
	if t.Empty() {
		return 0, "No words to evaluate"
	}

	total := 0
	dominant := ""
	dominantCount := 0
	for _, f := range r.Fillers {
		n := len(r.fillerRes[f].FindAllString(t.Lower, -1))
		if n == 0 {
			continue
		}
		total += n
		if n > dominantCount {
			dominant, dominantCount = f, n
		}
	}

	if total == 0 {
		return 1.0, "No filler words - clear delivery"
	}

	rate := float64(total) / float64(t.SafeWordCount())
	sub := clamp01(1 - rate*r.FillerPenalty)

	fb := fmt.Sprintf("%d filler words (%.1f%% of speech), most frequent: %q", total, rate*100, dominant)
	if others := otherFillers(r, t.Lower, dominant); others != "" {
		fb += fmt.Sprintf("; also: %s", others)
	}
	return sub, fb
}

// otherFillers lists the remaining fillers present, in rubric order.
func otherFillers(r *Rubric, lower, dominant string) string {
	found := make([]string, 0, 4)
	for _, f := range r.Fillers {
		if f == dominant {
			continue
		}
		if r.fillerRes[f].MatchString(lower) {
			found = append(found, f)
		}
	}
	return strings.Join(found, ", ")
}
