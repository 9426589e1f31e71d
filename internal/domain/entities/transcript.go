package entities

// Transcript is a normalized view of one submitted self-introduction.
// All derived counts are computed once by the preprocessor; extractors
// never re-tokenize.
type Transcript struct {
	// Raw is the transcript exactly as submitted.
	Raw string `json:"raw"`
	// Text is Raw with runs of whitespace collapsed to single spaces and
	// leading/trailing whitespace trimmed. Case is preserved for the
	// grammar heuristics.
	Text string `json:"text"`
	// Lower is Text lower-cased, used for all phrase and keyword matching.
	Lower string `json:"lower"`
	// Words are the whitespace tokens of Text.
	Words []string `json:"-"`
	// Sentences are the non-empty segments of Text split on . ! ?
	Sentences []string `json:"-"`

	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
	UniqueWords   int `json:"unique_words"`

	// DurationMinutes is the spoken duration supplied by the caller.
	// Zero or negative means "not provided".
	DurationMinutes float64 `json:"duration_minutes"`
}

// Empty reports whether the transcript contains no words at all.
func (t Transcript) Empty() bool {
	return t.WordCount == 0
}

// SafeSentenceCount returns the sentence count with a minimum of 1 so it
// can be used as a divisor.
func (t Transcript) SafeSentenceCount() int {
	if t.SentenceCount < 1 {
		return 1
	}
	return t.SentenceCount
}

// SafeWordCount returns the word count with a minimum of 1 so it can be
// used as a divisor.
func (t Transcript) SafeWordCount() int {
	if t.WordCount < 1 {
		return 1
	}
	return t.WordCount
}
