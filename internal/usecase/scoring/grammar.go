package scoring

import (
	"fmt"
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// scoreGrammar counts heuristic error signals and applies a linear
// per-sentence penalty. The checks target mechanics a transcript can show
// without a real parser: an uncapitalized "i", sentences starting
// lowercase, doubled spacing in the raw input, adjacent repeated words,
// and one-word fragments.
func scoreGrammar(t entities.Transcript, r *Rubric) (float64, string) {
	if t.Empty() {
		return 0, "No text to evaluate"
	}

	errors := 0
	errors += len(r.standaloneLowerI.FindAllString(t.Text, -1))
	errors += len(r.lowerAfterStop.FindAllString(t.Text, -1))
	errors += len(r.doubleSpace.FindAllString(strings.TrimSpace(t.Raw), -1))
	errors += repeatedWordCount(t.Words)
	errors += fragmentCount(t.Sentences)

	density := float64(errors) / float64(t.SafeSentenceCount())
	sub := clamp01(1 - density*r.GrammarPenalty)

	switch {
	case errors == 0:
		return sub, "No grammar issues detected"
	case density <= 0.3:
		return sub, fmt.Sprintf("Low error density (%d issues)", errors)
	case density <= 0.7:
		return sub, fmt.Sprintf("Medium error density (%d issues)", errors)
	default:
		return sub, fmt.Sprintf("High error density (%d issues)", errors)
	}
}

// repeatedWordCount counts adjacent case-insensitive duplicates, e.g.
// "the the". Regex backreferences are unavailable in RE2, so this is a
// token scan.
func repeatedWordCount(words []string) int {
	count := 0
	for i := 1; i < len(words); i++ {
		a := normalizeWord(words[i-1])
		b := normalizeWord(words[i])
		if a != "" && a == b {
			count++
		}
	}
	return count
}

// fragmentCount counts one-word sentences.
func fragmentCount(sentences []string) int {
	count := 0
	for _, s := range sentences {
		if len(strings.Fields(s)) == 1 {
			count++
		}
	}
	return count
}
