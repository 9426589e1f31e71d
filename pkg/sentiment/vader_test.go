package sentiment

import "testing"

func TestVaderAnalyzer_Polarity(t *testing.T) {
	a := NewVaderAnalyzer()

	pos := a.Polarity("I love this wonderful amazing day")
	if pos.Compound <= 0 {
		t.Errorf("positive text compound = %f, want > 0", pos.Compound)
	}

	neg := a.Polarity("This is terrible, awful and horrible")
	if neg.Compound >= 0 {
		t.Errorf("negative text compound = %f, want < 0", neg.Compound)
	}

	for _, s := range []Score{pos, neg, a.Polarity("")} {
		if s.Compound < -1 || s.Compound > 1 {
			t.Errorf("compound %f out of [-1,1]", s.Compound)
		}
	}
}

func TestVaderAnalyzer_Deterministic(t *testing.T) {
	a := NewVaderAnalyzer()
	text := "I really enjoy painting and playing cricket"
	if a.Polarity(text) != a.Polarity(text) {
		t.Error("same text must yield the same score")
	}
}
