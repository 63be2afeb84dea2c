package quiz

import (
	"math"

	"github.com/abhisek/idiomaster/internal/idiom"
	"github.com/abhisek/idiomaster/internal/stats"
)

// Score is the immutable scoring snapshot computed once at completion.
type Score struct {
	CorrectAnswers int   `json:"correctAnswers"`
	TotalQuestions int   `json:"totalQuestions"`
	Percentage     int   `json:"percentage"`
	Points         int   `json:"points"`
	MaxPoints      int   `json:"maxPoints"`
	Passed         bool  `json:"passed"`
	Grade          Grade `json:"grade"`
}

// TimeStats summarizes per-question timing for a session, in seconds.
type TimeStats struct {
	TotalTime          float64 `json:"totalTime"`
	AveragePerQuestion float64 `json:"averagePerQuestion"`
	FastestQuestion    float64 `json:"fastestQuestion"`
	SlowestQuestion    float64 `json:"slowestQuestion"`
}

// CategoryPerformance is the per-category breakdown of one session.
type CategoryPerformance struct {
	Category   idiom.Category `json:"category"`
	Correct    int            `json:"correct"`
	Total      int            `json:"total"`
	Percentage int            `json:"percentage"`
}

// DifficultyPerformance is the per-difficulty breakdown of one session.
type DifficultyPerformance struct {
	Difficulty idiom.Difficulty `json:"difficulty"`
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
}

// StreakInfo reports how the session affected the daily streak.
type StreakInfo struct {
	Maintained    bool `json:"maintained"`
	CurrentStreak int  `json:"currentStreak"`
	StreakBroken  bool `json:"streakBroken"`
}

// Results is the full outcome of a completed session, assembled exactly
// once when the session reaches the completed state.
type Results struct {
	SessionID             string                  `json:"sessionId"`
	Config                Config                  `json:"-"`
	Score                 Score                   `json:"score"`
	Answers               []Answer                `json:"answers"`
	TimeStats             TimeStats               `json:"timeStats"`
	CategoryPerformance   []CategoryPerformance   `json:"categoryPerformance"`
	DifficultyPerformance []DifficultyPerformance `json:"difficultyPerformance"`
	XPEarned              int                     `json:"xpEarned"`
	AchievementsUnlocked  []string                `json:"achievementsUnlocked"`
	LeveledUp             bool                    `json:"leveledUp"`
	NewLevel              int                     `json:"newLevel,omitempty"`
	StreakInfo            StreakInfo              `json:"streakInfo"`
	Recommendations       []stats.Recommendation  `json:"recommendations"`
}

// ComputeScore derives the score snapshot from recorded answers.
func ComputeScore(questions []Question, answers []Answer, passingScore int, bands []GradeBand) Score {
	s := Score{TotalQuestions: len(questions)}
	for _, q := range questions {
		s.MaxPoints += q.Points()
	}
	for _, a := range answers {
		if a.Correct {
			s.CorrectAnswers++
		}
		s.Points += a.PointsEarned
	}
	if s.TotalQuestions > 0 {
		s.Percentage = int(math.Round(100 * float64(s.CorrectAnswers) / float64(s.TotalQuestions)))
	}
	s.Passed = s.Percentage >= passingScore
	s.Grade = GradeFor(s.Percentage, bands)
	return s
}

// ComputeTimeStats derives timing stats from recorded answers.
func ComputeTimeStats(answers []Answer) TimeStats {
	ts := TimeStats{}
	if len(answers) == 0 {
		return ts
	}
	ts.FastestQuestion = answers[0].TimeSpent
	for _, a := range answers {
		ts.TotalTime += a.TimeSpent
		if a.TimeSpent < ts.FastestQuestion {
			ts.FastestQuestion = a.TimeSpent
		}
		if a.TimeSpent > ts.SlowestQuestion {
			ts.SlowestQuestion = a.TimeSpent
		}
	}
	ts.AveragePerQuestion = ts.TotalTime / float64(len(answers))
	return ts
}

// BreakdownByCategory computes the per-category session performance.
// A question contributes to every category its idiom belongs to.
func BreakdownByCategory(questions []Question, answers []Answer) []CategoryPerformance {
	correctByID := answerMap(answers)
	type ct struct{ correct, total int }
	counts := make(map[idiom.Category]*ct)
	var order []idiom.Category

	for _, q := range questions {
		cats := questionCategories(q)
		for _, c := range cats {
			e := counts[c]
			if e == nil {
				e = &ct{}
				counts[c] = e
				order = append(order, c)
			}
			e.total++
			if correctByID[q.ID()] {
				e.correct++
			}
		}
	}

	out := make([]CategoryPerformance, 0, len(order))
	for _, c := range order {
		e := counts[c]
		out = append(out, CategoryPerformance{
			Category:   c,
			Correct:    e.correct,
			Total:      e.total,
			Percentage: percent(e.correct, e.total),
		})
	}
	return out
}

// BreakdownByDifficulty computes the per-difficulty session performance.
func BreakdownByDifficulty(questions []Question, answers []Answer) []DifficultyPerformance {
	correctByID := answerMap(answers)
	type ct struct{ correct, total int }
	counts := make(map[idiom.Difficulty]*ct)
	var order []idiom.Difficulty

	for _, q := range questions {
		d := questionDifficulty(q)
		e := counts[d]
		if e == nil {
			e = &ct{}
			counts[d] = e
			order = append(order, d)
		}
		e.total++
		if correctByID[q.ID()] {
			e.correct++
		}
	}

	out := make([]DifficultyPerformance, 0, len(order))
	for _, d := range order {
		e := counts[d]
		out = append(out, DifficultyPerformance{
			Difficulty: d,
			Correct:    e.correct,
			Total:      e.total,
			Percentage: percent(e.correct, e.total),
		})
	}
	return out
}

func answerMap(answers []Answer) map[string]bool {
	m := make(map[string]bool, len(answers))
	for _, a := range answers {
		m[a.QuestionID] = a.Correct
	}
	return m
}

func questionCategories(q Question) []idiom.Category {
	switch q := q.(type) {
	case MultipleChoice:
		return q.Idiom.Categories
	case FillBlank:
		return q.Idiom.Categories
	case MatchSituation:
		return q.Idiom.Categories
	case Audio:
		return q.Idiom.Categories
	}
	return nil
}

func questionDifficulty(q Question) idiom.Difficulty {
	switch q := q.(type) {
	case MultipleChoice:
		return q.Idiom.Difficulty
	case FillBlank:
		return q.Idiom.Difficulty
	case MatchSituation:
		return q.Idiom.Difficulty
	case Audio:
		return q.Idiom.Difficulty
	}
	return ""
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
