package entities

import "testing"

func TestGradeFor_Boundaries(t *testing.T) {
	cases := []struct {
		total int
		want  GradeBand
	}{
		{100, GradeExcellent},
		{85, GradeExcellent},
		{84, GradeGood},
		{70, GradeGood},
		{69, GradeFair},
		{55, GradeFair},
		{54, GradeNeedsImprovement},
		{0, GradeNeedsImprovement},
	}
	for _, c := range cases {
		if got := GradeFor(c.total); got != c.want {
			t.Errorf("GradeFor(%d) = %q, want %q", c.total, got, c.want)
		}
	}
}

func TestCriterionOrder_CoversAllCriteria(t *testing.T) {
	if len(CriterionOrder) != 8 {
		t.Fatalf("expected 8 criteria, got %d", len(CriterionOrder))
	}
	seen := make(map[Criterion]bool)
	for _, c := range CriterionOrder {
		if seen[c] {
			t.Fatalf("duplicate criterion %q in order", c)
		}
		seen[c] = true
		if c.DisplayName() == string(c) {
			t.Errorf("criterion %q has no display name", c)
		}
	}
}

func TestScoreReport_Result(t *testing.T) {
	r := NewScoreReport()
	r.Criteria = append(r.Criteria, CriterionResult{Criterion: CriterionContent, Weight: 30, SubScore: 0.5})

	got, ok := r.Result(CriterionContent)
	if !ok || got.Weight != 30 {
		t.Fatalf("Result(content) = %+v, %v", got, ok)
	}
	if _, ok := r.Result(CriterionGrammar); ok {
		t.Fatal("Result(grammar) should be absent")
	}
}
