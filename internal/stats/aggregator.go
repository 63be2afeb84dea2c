package stats

import (
	"fmt"
	"sort"
	"sync"
)

// minCategoryAttempts is the sample floor before a category can be
// flagged as needing practice.
const minCategoryAttempts = 3

// Aggregator maintains rolling performance breakdowns across quizzes
// and produces study recommendations. Safe for concurrent use.
type Aggregator struct {
	mu  sync.Mutex
	cfg Config

	byCategory   map[string]CorrectTotal
	byDifficulty map[string]CorrectTotal
	byType       map[string]typeAgg

	// scores is the chronological time-series of quiz percentages.
	scores []int
	// recent holds the most recent samples, newest last, bounded by the
	// larger of the review and difficulty windows.
	recent    []Sample
	totalTime float64 // seconds
}

type typeAgg struct {
	Taken    int `json:"taken"`
	ScoreSum int `json:"scoreSum"`
	Best     int `json:"best"`
}

// New creates an empty aggregator with the given heuristics.
func New(cfg Config) *Aggregator {
	return &Aggregator{
		cfg:          cfg,
		byCategory:   make(map[string]CorrectTotal),
		byDifficulty: make(map[string]CorrectTotal),
		byType:       make(map[string]typeAgg),
	}
}

// Record folds one completed quiz into the rolling state.
func (a *Aggregator) Record(s Sample) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for cat, ct := range s.ByCategory {
		cur := a.byCategory[cat]
		cur.Correct += ct.Correct
		cur.Total += ct.Total
		a.byCategory[cat] = cur
	}
	for diff, ct := range s.ByDifficulty {
		cur := a.byDifficulty[diff]
		cur.Correct += ct.Correct
		cur.Total += ct.Total
		a.byDifficulty[diff] = cur
	}

	ta := a.byType[s.QuizType]
	ta.Taken++
	ta.ScoreSum += s.ScorePercent
	if s.ScorePercent > ta.Best {
		ta.Best = s.ScorePercent
	}
	a.byType[s.QuizType] = ta

	a.scores = append(a.scores, s.ScorePercent)
	a.totalTime += s.TimeSpent

	a.recent = append(a.recent, s)
	if max := a.recentWindow(); len(a.recent) > max {
		a.recent = a.recent[len(a.recent)-max:]
	}
}

func (a *Aggregator) recentWindow() int {
	w := a.cfg.ReviewWindow
	if a.cfg.DifficultyStreak > w {
		w = a.cfg.DifficultyStreak
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Statistics assembles the analytics snapshot.
func (a *Aggregator) Statistics() QuizStatistics {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := QuizStatistics{
		TotalQuizzes:            len(a.scores),
		TotalTimeMinutes:        a.totalTime / 60,
		PerformanceByType:       make(map[string]TypePerformance, len(a.byType)),
		PerformanceByDifficulty: make(map[string]TypePerformance),
		ImprovementTrend:        a.trendLocked(),
	}

	sum := 0
	for _, s := range a.scores {
		sum += s
		if s > out.BestScore {
			out.BestScore = s
		}
	}
	if len(a.scores) > 0 {
		out.AverageScore = float64(sum) / float64(len(a.scores))
	}

	for typ, ta := range a.byType {
		out.PerformanceByType[typ] = TypePerformance{
			Taken:        ta.Taken,
			AverageScore: float64(ta.ScoreSum) / float64(ta.Taken),
			BestScore:    ta.Best,
		}
	}
	for diff, ct := range a.byDifficulty {
		out.PerformanceByDifficulty[diff] = TypePerformance{
			Taken:        ct.Total,
			AverageScore: 100 * ct.Accuracy(),
		}
	}

	for cat, ct := range a.byCategory {
		if ct.Total == 0 {
			continue
		}
		out.ChallengingCategories = append(out.ChallengingCategories, ChallengingCategory{
			Category:     cat,
			AverageScore: 100 * ct.Accuracy(),
			Attempted:    ct.Total,
		})
	}
	sort.Slice(out.ChallengingCategories, func(i, j int) bool {
		ci, cj := out.ChallengingCategories[i], out.ChallengingCategories[j]
		if ci.AverageScore != cj.AverageScore {
			return ci.AverageScore < cj.AverageScore
		}
		return ci.Category < cj.Category
	})

	return out
}

// trendLocked compares the newer half of the trend window against the
// older half.
func (a *Aggregator) trendLocked() ImprovementTrend {
	trend := ImprovementTrend{Period: fmt.Sprintf("last-%d-quizzes", a.cfg.TrendWindow)}

	window := a.scores
	if n := a.cfg.TrendWindow; n > 0 && len(window) > n {
		window = window[len(window)-n:]
	}
	if len(window) < 2 {
		return trend
	}

	mid := len(window) / 2
	older, newer := window[:mid], window[mid:]
	trend.ScoreImprovement = mean(newer) - mean(older)
	trend.AccuracyImprovement = trend.ScoreImprovement / 100
	return trend
}

func mean(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// Recommendations derives study suggestions from the rolling state.
func (a *Aggregator) Recommendations() []Recommendation {
	a.mu.Lock()
	defer a.mu.Unlock()

	var recs []Recommendation

	// Weak categories.
	var weak []string
	for cat, ct := range a.byCategory {
		if ct.Total >= minCategoryAttempts && ct.Accuracy() < a.cfg.AccuracyThreshold {
			weak = append(weak, cat)
		}
	}
	sort.Strings(weak)
	for _, cat := range weak {
		recs = append(recs, Recommendation{
			Type:    RecommendPracticeCategory,
			Message: fmt.Sprintf("Your accuracy in %s idioms is below %.0f%%. A focused practice quiz would help.", cat, 100*a.cfg.AccuracyThreshold),
			Target:  cat,
		})
	}

	// Idioms missed repeatedly in the review window.
	missCount := make(map[string]int)
	start := 0
	if len(a.recent) > a.cfg.ReviewWindow {
		start = len(a.recent) - a.cfg.ReviewWindow
	}
	for _, s := range a.recent[start:] {
		seen := make(map[string]bool)
		for _, id := range s.MissedIdioms {
			if !seen[id] {
				missCount[id]++
				seen[id] = true
			}
		}
	}
	var review []string
	for id, n := range missCount {
		if n >= 2 {
			review = append(review, id)
		}
	}
	sort.Strings(review)
	for _, id := range review {
		recs = append(recs, Recommendation{
			Type:    RecommendReviewIdiom,
			Message: fmt.Sprintf("You have missed %q more than once recently. Review it before your next quiz.", id),
			Target:  id,
		})
	}

	// Consistent high accuracy at one difficulty.
	if next, ok := a.difficultyStepLocked(); ok {
		recs = append(recs, Recommendation{
			Type:    RecommendTryDifficulty,
			Message: fmt.Sprintf("You have been scoring high consistently. Try %s idioms next.", next),
			Target:  next,
		})
	}

	return recs
}

var nextDifficulty = map[string]string{
	"beginner":     "intermediate",
	"intermediate": "advanced",
}

func (a *Aggregator) difficultyStepLocked() (string, bool) {
	m := a.cfg.DifficultyStreak
	if m < 1 || len(a.recent) < m {
		return "", false
	}
	window := a.recent[len(a.recent)-m:]
	diff := window[0].Difficulty
	bar := int(100 * a.cfg.DifficultyAccuracy)
	for _, s := range window {
		if s.Difficulty != diff || s.ScorePercent < bar {
			return "", false
		}
	}
	next, ok := nextDifficulty[diff]
	return next, ok
}
