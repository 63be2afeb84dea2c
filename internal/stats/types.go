package stats

import "time"

// RecommendationType identifies a study recommendation heuristic.
type RecommendationType string

const (
	RecommendPracticeCategory RecommendationType = "practice-category"
	RecommendReviewIdiom      RecommendationType = "review-idiom"
	RecommendTryDifficulty    RecommendationType = "try-difficulty"
)

// Recommendation is a study suggestion produced from rolling stats.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
	// Target carries the subject: a category, idiom id, or difficulty.
	Target string `json:"target,omitempty"`
}

// CorrectTotal is a running correct/total counter.
type CorrectTotal struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns the counter's accuracy in 0.0-1.0, or zero when empty.
func (c CorrectTotal) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

// Sample is one completed quiz fed into the aggregator.
type Sample struct {
	SessionID    string                  `json:"sessionId"`
	Date         time.Time               `json:"date"`
	QuizType     string                  `json:"quizType"`
	Difficulty   string                  `json:"difficulty"`
	ScorePercent int                     `json:"scorePercent"`
	Correct      int                     `json:"correct"`
	Total        int                     `json:"total"`
	TimeSpent    float64                 `json:"timeSpent"` // seconds
	ByCategory   map[string]CorrectTotal `json:"byCategory"`
	ByDifficulty map[string]CorrectTotal `json:"byDifficulty"`
	MissedIdioms []string                `json:"missedIdioms"`
}

// TypePerformance is the rolling record for one quiz type or difficulty.
type TypePerformance struct {
	Taken        int     `json:"taken"`
	AverageScore float64 `json:"averageScore"`
	BestScore    int     `json:"bestScore"`
}

// ChallengingCategory is a category ranked by low rolling accuracy.
type ChallengingCategory struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"averageScore"`
	Attempted    int     `json:"attempted"`
}

// ImprovementTrend compares recent scores against the preceding window.
type ImprovementTrend struct {
	Period               string  `json:"period"`
	ScoreImprovement     float64 `json:"scoreImprovement"`
	AccuracyImprovement  float64 `json:"accuracyImprovement"`
}

// QuizStatistics is the analytics snapshot exposed to callers.
type QuizStatistics struct {
	TotalQuizzes            int                        `json:"totalQuizzes"`
	AverageScore            float64                    `json:"averageScore"`
	BestScore               int                        `json:"bestScore"`
	TotalTimeMinutes        float64                    `json:"totalTimeMinutes"`
	PerformanceByType       map[string]TypePerformance `json:"performanceByType"`
	PerformanceByDifficulty map[string]TypePerformance `json:"performanceByDifficulty"`
	ChallengingCategories   []ChallengingCategory      `json:"challengingCategories"`
	ImprovementTrend        ImprovementTrend           `json:"improvementTrend"`
}
