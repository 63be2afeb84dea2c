package engine

import (
	"context"
	"time"

	"github.com/abhisek/idiomaster/internal/achievements"
	"github.com/abhisek/idiomaster/internal/stats"
	"github.com/abhisek/idiomaster/internal/store"
)

// Statistics returns the user's rolling quiz analytics.
func (e *Engine) Statistics(ctx context.Context, userID string) (stats.QuizStatistics, error) {
	u, err := e.loadUser(ctx, userID)
	if err != nil {
		return stats.QuizStatistics{}, err
	}
	return u.agg.Statistics(), nil
}

// Recommendations returns the user's current study recommendations.
func (e *Engine) Recommendations(ctx context.Context, userID string) ([]stats.Recommendation, error) {
	u, err := e.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.agg.Recommendations(), nil
}

// AchievementReport is the catalog annotated with the user's unlock and
// partial-progress state.
type AchievementReport struct {
	Catalog  []achievements.Achievement
	Unlocked map[string]time.Time
	Partial  []achievements.Progress
}

// Achievements reports the user's standing against the catalog without
// unlocking anything; unlocks only happen in the completion pipeline.
func (e *Engine) Achievements(ctx context.Context, userID string) (AchievementReport, error) {
	u, err := e.loadUser(ctx, userID)
	if err != nil {
		return AchievementReport{}, err
	}

	e.mu.Lock()
	p := u.progress
	unlocked := make(map[string]time.Time, len(p.Achievements))
	for id, at := range p.Achievements {
		unlocked[id] = at
	}
	in := achievements.Input{
		IdiomsLearned:    p.LearnedCount(),
		Streak:           p.Streak,
		BestQuizAccuracy: p.BestAccuracy(),
		TotalXP:          p.XP,
		Unlocked:         unlocked,
	}
	e.mu.Unlock()

	_, partial := e.eval.Evaluate(in, e.catalog)
	return AchievementReport{
		Catalog:  e.catalog,
		Unlocked: unlocked,
		Partial:  partial,
	}, nil
}

// History returns the user's persisted quiz results, newest first.
func (e *Engine) History(ctx context.Context, userID string, limit int) ([]store.QuizResultRecord, error) {
	if e.events == nil {
		return nil, nil
	}
	return e.events.QueryQuizResults(ctx, userID, store.QueryOpts{Limit: limit})
}
