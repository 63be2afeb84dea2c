package stats

import (
	"testing"
	"time"
)

func sample(score int, diff string, missed ...string) Sample {
	return Sample{
		Date:         time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		QuizType:     "multiple-choice",
		Difficulty:   diff,
		ScorePercent: score,
		Correct:      score / 20,
		Total:        5,
		TimeSpent:    60,
		ByDifficulty: map[string]CorrectTotal{diff: {Correct: score / 20, Total: 5}},
		MissedIdioms: missed,
	}
}

func TestStatisticsTotals(t *testing.T) {
	a := New(DefaultConfig())
	a.Record(sample(60, "beginner"))
	a.Record(sample(80, "beginner"))

	st := a.Statistics()
	if st.TotalQuizzes != 2 {
		t.Errorf("totalQuizzes = %d, want 2", st.TotalQuizzes)
	}
	if st.AverageScore != 70 {
		t.Errorf("averageScore = %v, want 70", st.AverageScore)
	}
	if st.BestScore != 80 {
		t.Errorf("bestScore = %d, want 80", st.BestScore)
	}
	if st.TotalTimeMinutes != 2 {
		t.Errorf("totalTimeMinutes = %v, want 2", st.TotalTimeMinutes)
	}
	tp := st.PerformanceByType["multiple-choice"]
	if tp.Taken != 2 || tp.AverageScore != 70 || tp.BestScore != 80 {
		t.Errorf("type performance = %+v", tp)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	st := New(DefaultConfig()).Statistics()
	if st.TotalQuizzes != 0 || st.AverageScore != 0 || st.BestScore != 0 {
		t.Fatalf("empty aggregator produced %+v", st)
	}
}

func TestChallengingCategoriesOrdering(t *testing.T) {
	a := New(DefaultConfig())
	s := sample(60, "beginner")
	s.ByCategory = map[string]CorrectTotal{
		"animals": {Correct: 1, Total: 4},
		"weather": {Correct: 3, Total: 4},
		"food":    {Correct: 2, Total: 4},
	}
	a.Record(s)

	cats := a.Statistics().ChallengingCategories
	if len(cats) != 3 {
		t.Fatalf("categories = %d, want 3", len(cats))
	}
	want := []string{"animals", "food", "weather"}
	for i, w := range want {
		if cats[i].Category != w {
			t.Errorf("rank %d = %q, want %q", i, cats[i].Category, w)
		}
	}
	if cats[0].AverageScore != 25 {
		t.Errorf("worst category score = %v, want 25", cats[0].AverageScore)
	}
}

func TestImprovementTrend(t *testing.T) {
	a := New(DefaultConfig())
	for _, s := range []int{50, 60, 80, 90} {
		a.Record(sample(s, "beginner"))
	}
	trend := a.Statistics().ImprovementTrend
	// Older half averages 55, newer half 85.
	if trend.ScoreImprovement != 30 {
		t.Errorf("scoreImprovement = %v, want 30", trend.ScoreImprovement)
	}
	if trend.AccuracyImprovement != 0.3 {
		t.Errorf("accuracyImprovement = %v, want 0.3", trend.AccuracyImprovement)
	}
}

func TestImprovementTrendWindowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrendWindow = 4
	a := New(cfg)
	// Scores outside the window would flip the trend if counted.
	for _, s := range []int{100, 100, 100, 40, 50, 80, 90} {
		a.Record(sample(s, "beginner"))
	}
	trend := a.Statistics().ImprovementTrend
	if trend.ScoreImprovement != 40 {
		t.Errorf("scoreImprovement = %v, want 40", trend.ScoreImprovement)
	}
	if trend.Period != "last-4-quizzes" {
		t.Errorf("period = %q", trend.Period)
	}
}

func TestRecommendWeakCategory(t *testing.T) {
	a := New(DefaultConfig())
	s := sample(40, "beginner")
	s.ByCategory = map[string]CorrectTotal{"animals": {Correct: 1, Total: 3}}
	a.Record(s)

	recs := a.Recommendations()
	if len(recs) == 0 || recs[0].Type != RecommendPracticeCategory || recs[0].Target != "animals" {
		t.Fatalf("recommendations = %+v, want practice-category animals", recs)
	}
}

func TestRecommendWeakCategoryNeedsSample(t *testing.T) {
	a := New(DefaultConfig())
	s := sample(40, "beginner")
	s.ByCategory = map[string]CorrectTotal{"animals": {Correct: 0, Total: 2}}
	a.Record(s)

	for _, r := range a.Recommendations() {
		if r.Type == RecommendPracticeCategory {
			t.Fatalf("category flagged on %d attempts: %+v", 2, r)
		}
	}
}

func TestRecommendReviewIdiom(t *testing.T) {
	a := New(DefaultConfig())
	a.Record(sample(60, "beginner", "break-the-ice"))
	a.Record(sample(60, "beginner", "break-the-ice", "hit-the-sack"))

	var targets []string
	for _, r := range a.Recommendations() {
		if r.Type == RecommendReviewIdiom {
			targets = append(targets, r.Target)
		}
	}
	if len(targets) != 1 || targets[0] != "break-the-ice" {
		t.Fatalf("review targets = %v, want [break-the-ice]", targets)
	}
}

func TestRecommendTryDifficulty(t *testing.T) {
	a := New(DefaultConfig())
	a.Record(sample(90, "beginner"))
	a.Record(sample(100, "beginner"))

	for _, r := range a.Recommendations() {
		if r.Type == RecommendTryDifficulty {
			t.Fatal("two high scores should not trigger the step-up yet")
		}
	}

	a.Record(sample(95, "beginner"))
	found := false
	for _, r := range a.Recommendations() {
		if r.Type == RecommendTryDifficulty {
			found = true
			if r.Target != "intermediate" {
				t.Errorf("target = %q, want intermediate", r.Target)
			}
		}
	}
	if !found {
		t.Fatal("three high beginner scores should recommend intermediate")
	}
}

func TestRecommendTryDifficultyBrokenByLowScore(t *testing.T) {
	a := New(DefaultConfig())
	a.Record(sample(90, "beginner"))
	a.Record(sample(50, "beginner"))
	a.Record(sample(95, "beginner"))

	for _, r := range a.Recommendations() {
		if r.Type == RecommendTryDifficulty {
			t.Fatal("a low score inside the streak should suppress the step-up")
		}
	}
}

func TestRecommendTryDifficultyTopsOut(t *testing.T) {
	a := New(DefaultConfig())
	for i := 0; i < 3; i++ {
		a.Record(sample(95, "advanced"))
	}
	for _, r := range a.Recommendations() {
		if r.Type == RecommendTryDifficulty {
			t.Fatal("advanced has no next step")
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	a := New(DefaultConfig())
	s := sample(40, "beginner", "break-the-ice")
	s.ByCategory = map[string]CorrectTotal{"animals": {Correct: 1, Total: 3}}
	a.Record(s)
	a.Record(sample(80, "beginner", "break-the-ice"))

	b := New(DefaultConfig())
	b.Restore(a.Snapshot())

	got, want := b.Statistics(), a.Statistics()
	if got.TotalQuizzes != want.TotalQuizzes || got.AverageScore != want.AverageScore {
		t.Fatalf("restored totals %v/%v, want %v/%v",
			got.TotalQuizzes, got.AverageScore, want.TotalQuizzes, want.AverageScore)
	}
	if len(b.Recommendations()) != len(a.Recommendations()) {
		t.Fatal("restored aggregator lost recommendation state")
	}

	// Restoring nil leaves state untouched.
	b.Restore(nil)
	if b.Statistics().TotalQuizzes != want.TotalQuizzes {
		t.Fatal("nil restore cleared state")
	}
}
