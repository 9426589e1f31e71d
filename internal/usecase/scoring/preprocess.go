package scoring

import (
	"strings"

	"github.com/speakwise/intro-scorer/internal/domain/entities"
)

// Normalize turns raw input into the Transcript view all extractors share.
// Empty or whitespace-only input produces zero counts, never an error.
func Normalize(raw string, durationMinutes float64) entities.Transcript {
	text := strings.Join(strings.Fields(raw), " ")
	lower := strings.ToLower(text)

	words := strings.Fields(text)

	t := entities.Transcript{
		Raw:             raw,
		Text:            text,
		Lower:           lower,
		Words:           words,
		WordCount:       len(words),
		Sentences:       splitSentences(text),
		UniqueWords:     countUnique(words),
		DurationMinutes: durationMinutes,
	}
	t.SentenceCount = len(t.Sentences)
	return t
}

// splitSentences splits on sentence terminators and drops empty segments.
func splitSentences(text string) []string {
	segs := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// countUnique counts distinct words after lower-casing and trimming
// surrounding punctuation, so "Cricket," and "cricket" are one word.
func countUnique(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		n := normalizeWord(w)
		if n == "" {
			continue
		}
		seen[n] = struct{}{}
	}
	return len(seen)
}

func normalizeWord(w string) string {
	return strings.Trim(strings.ToLower(w), ".,!?;:\"'()[]-")
}
