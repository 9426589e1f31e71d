package scoring

import (
	"fmt"
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// scoreContent measures coverage of the required keyword categories plus a
// capped bonus for extras. Each category counts once no matter how often
// its terms repeat.
func scoreContent(t entities.Transcript, r *Rubric) (float64, string) {
	must := coveredCategories(t.Lower, r.MustKeywords)
	bonus := coveredCategories(t.Lower, r.BonusKeywords)

	base := float64(len(must)) / float64(len(r.MustKeywords))
	extra := float64(min(len(bonus), r.BonusCategoryCap)) * r.BonusPerCategory
	sub := clamp01(base + extra)

	missing := missingCategories(must, r.MustKeywords)

	var fb string
	switch {
	case len(missing) == 0:
		fb = "All required topics covered"
	case len(must) == 0:
		fb = fmt.Sprintf("Missing: %s", strings.Join(missing, ", "))
	default:
		fb = fmt.Sprintf("Covered: %s; missing: %s", strings.Join(must, ", "), strings.Join(missing, ", "))
	}
	if len(bonus) > 0 {
		fb += fmt.Sprintf("; extras: %s", strings.Join(bonus, ", "))
	}
	return sub, fb
}

func missingCategories(found []string, cats []KeywordCategory) []string {
	have := make(map[string]struct{}, len(found))
	for _, f := range found {
		have[f] = struct{}{}
	}
	missing := make([]string, 0, len(cats))
	for _, c := range cats {
		if _, ok := have[c.Key]; !ok {
			missing = append(missing, c.Key)
		}
	}
	return missing
}
