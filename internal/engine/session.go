package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/idiomaster/internal/achievements"
	"github.com/abhisek/idiomaster/internal/progression"
	"github.com/abhisek/idiomaster/internal/quiz"
	"github.com/abhisek/idiomaster/internal/stats"
	"github.com/abhisek/idiomaster/internal/store"
)

// ledgerRetries bounds retries when a quiz transaction collides with
// another writer on the same user.
const ledgerRetries = 3

// StartSession generates questions for cfg and starts a new session for
// the user.
func (e *Engine) StartSession(ctx context.Context, userID string, cfg quiz.Config) (*quiz.Session, error) {
	if _, err := e.loadUser(ctx, userID); err != nil {
		return nil, err
	}

	// Unset session knobs fall back to policy.
	if cfg.PassingScore <= 0 {
		cfg.PassingScore = e.cfg.Quiz.PassingScore
	}
	if cfg.QuestionCount <= 0 {
		cfg.QuestionCount = e.cfg.Quiz.QuestionCount
	}

	questions, err := e.gen.Generate(cfg)
	if err != nil {
		return nil, err
	}

	sess := quiz.NewSession(e.newID(), cfg, questions, e.now)
	if err := sess.Start(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.sessions[sess.ID()] = &handle{userID: userID, sess: sess}
	e.mu.Unlock()

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: sess.ID(),
			UserID:    userID,
			Action:    "start",
			QuizType:  string(cfg.Type),
		})
		if err != nil {
			return nil, fmt.Errorf("record session start: %w", err)
		}
	}
	return sess, nil
}

// Session returns a live session by id.
func (e *Engine) Session(sessionID string) (*quiz.Session, error) {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return nil, err
	}
	return h.sess, nil
}

func (e *Engine) handleFor(sessionID string) (*handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	h, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return h, nil
}

// SubmitAnswer scores the current question's answer. When the
// submission completes the session (last question, or a deadline that
// fired first), the completion pipeline runs and the results are
// returned alongside the answer.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionID, questionID, raw string) (quiz.Answer, *quiz.Results, error) {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return quiz.Answer{}, nil, err
	}

	ans, err := h.sess.Submit(questionID, raw)
	if err != nil {
		// A deadline can complete the session inside Submit; the
		// rejected answer still needs the pipeline to run.
		if h.sess.State() == quiz.StateCompleted {
			if _, ferr := e.finalize(ctx, h); ferr != nil {
				return quiz.Answer{}, nil, errors.Join(err, ferr)
			}
		}
		return quiz.Answer{}, nil, err
	}

	if h.sess.State() == quiz.StateCompleted {
		results, ferr := e.finalize(ctx, h)
		return ans, results, ferr
	}
	return ans, nil, nil
}

// PauseSession pauses a session.
func (e *Engine) PauseSession(sessionID string) error {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return err
	}
	return h.sess.Pause()
}

// ResumeSession resumes a paused session.
func (e *Engine) ResumeSession(sessionID string) error {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return err
	}
	return h.sess.Resume()
}

// AbandonSession terminates a session without results; nothing is
// applied to the user's progress.
func (e *Engine) AbandonSession(ctx context.Context, sessionID string) error {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return err
	}
	if err := h.sess.Abandon(); err != nil {
		return err
	}
	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:    sessionID,
			UserID:       h.userID,
			Action:       "abandon",
			QuizType:     string(h.sess.Config().Type),
			DurationSecs: int(h.sess.Elapsed().Seconds()),
		})
		if err != nil {
			return fmt.Errorf("record session abandon: %w", err)
		}
	}
	return nil
}

// Tick runs the session's deadline check. When a timeout completes the
// session, the completion pipeline runs and the results are returned.
func (e *Engine) Tick(ctx context.Context, sessionID string) (*quiz.Results, bool, error) {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return nil, false, err
	}
	if !h.sess.Tick() {
		return nil, false, nil
	}
	results, err := e.finalize(ctx, h)
	return results, true, err
}

// Results returns a completed session's results. The pipeline runs at
// most once; later calls return the cached results.
func (e *Engine) Results(ctx context.Context, sessionID string) (*quiz.Results, error) {
	h, err := e.handleFor(sessionID)
	if err != nil {
		return nil, err
	}
	if h.sess.State() != quiz.StateCompleted {
		return nil, &quiz.InvalidStateError{Op: "results", State: h.sess.State()}
	}
	return e.finalize(ctx, h)
}

// finalize is the completion pipeline: score the session, fold the
// outcome into the ledger, evaluate achievements, feed the aggregator,
// persist events and a snapshot, and assemble the results. It runs at
// most once per session; the outcome (results or error) is cached.
func (e *Engine) finalize(ctx context.Context, h *handle) (*quiz.Results, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finalized {
		return h.results, h.finalErr
	}
	h.finalized = true
	h.results, h.finalErr = e.runPipeline(ctx, h)
	return h.results, h.finalErr
}

func (e *Engine) runPipeline(ctx context.Context, h *handle) (*quiz.Results, error) {
	sess := h.sess
	cfg := sess.Config()
	questions := sess.Questions()
	answers := sess.Answers()
	score := sess.Score(e.bands)

	u, err := e.loadUser(ctx, h.userID)
	if err != nil {
		return nil, err
	}

	outcome := outcomeFrom(sess, score)

	e.mu.Lock()
	defer e.mu.Unlock()

	var (
		updated *progression.UserProgress
		streak  progression.StreakResult
	)
	for attempt := 0; ; attempt++ {
		updated, streak, err = e.ledger.ApplyQuizResult(u.progress, outcome)
		if err == nil {
			break
		}
		if !errors.Is(err, progression.ErrLedgerConflict) || attempt+1 >= ledgerRetries {
			return nil, err
		}
	}
	levelBefore := u.progress.Level

	// Session-scoped action tokens for achievement triggers.
	actions := map[string]bool{}
	if len(updated.QuizHistory) == 1 {
		actions["first-quiz"] = true
	}
	if score.Percentage == 100 {
		actions["perfect-score"] = true
	}
	if hour := e.now().Hour(); hour >= 22 || hour < 5 {
		actions["night-owl"] = true
	}

	newly, _ := e.eval.Evaluate(achievements.Input{
		IdiomsLearned:    updated.LearnedCount(),
		Streak:           updated.Streak,
		BestQuizAccuracy: updated.BestAccuracy(),
		TotalXP:          updated.XP,
		Actions:          actions,
		Unlocked:         updated.Achievements,
	}, e.catalog)

	unlocked := make([]string, 0, len(newly))
	for _, un := range newly {
		if !e.ledger.UnlockAchievement(updated, un.Achievement.ID, un.Achievement.XPReward, un.UnlockedAt) {
			continue
		}
		unlocked = append(unlocked, un.Achievement.ID)
	}
	u.progress = updated

	u.agg.Record(sampleFrom(sess, score, outcome))
	recommendations := u.agg.Recommendations()

	results := &quiz.Results{
		SessionID:             sess.ID(),
		Config:                cfg,
		Score:                 score,
		Answers:               answers,
		TimeStats:             quiz.ComputeTimeStats(answers),
		CategoryPerformance:   quiz.BreakdownByCategory(questions, answers),
		DifficultyPerformance: quiz.BreakdownByDifficulty(questions, answers),
		XPEarned:              outcome.XPEarned,
		AchievementsUnlocked:  unlocked,
		LeveledUp:             updated.Level > levelBefore,
		NewLevel:              updated.Level,
		StreakInfo: quiz.StreakInfo{
			Maintained:    streak.Maintained,
			CurrentStreak: updated.Streak,
			StreakBroken:  streak.Broken,
		},
		Recommendations: recommendations,
	}

	if err := e.persistCompletion(ctx, h, sess, score, outcome, newly); err != nil {
		return results, err
	}
	if err := e.saveUser(ctx, u); err != nil {
		return results, err
	}
	return results, nil
}

// persistCompletion appends the completion events.
func (e *Engine) persistCompletion(ctx context.Context, h *handle, sess *quiz.Session, score quiz.Score, outcome progression.QuizOutcome, newly []achievements.Unlock) error {
	if e.events == nil {
		return nil
	}

	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID(),
		UserID:       h.userID,
		Action:       "complete",
		QuizType:     outcome.QuizType,
		Questions:    outcome.Total,
		Correct:      outcome.Correct,
		DurationSecs: int(sess.Elapsed().Seconds()),
		TimedOut:     sess.TimedOut(),
	})
	if err != nil {
		return fmt.Errorf("record session complete: %w", err)
	}

	err = e.events.AppendQuizResult(ctx, store.QuizResultEventData{
		SessionID:    sess.ID(),
		UserID:       h.userID,
		QuizType:     outcome.QuizType,
		Difficulty:   outcome.Difficulty,
		Correct:      score.CorrectAnswers,
		Total:        score.TotalQuestions,
		Percentage:   score.Percentage,
		Points:       score.Points,
		Grade:        string(score.Grade),
		Passed:       score.Passed,
		XPEarned:     outcome.XPEarned,
		DurationSecs: int(sess.Elapsed().Seconds()),
	})
	if err != nil {
		return fmt.Errorf("record quiz result: %w", err)
	}

	for _, un := range newly {
		sid := sess.ID()
		err := e.events.AppendAchievement(ctx, store.AchievementEventData{
			AchievementID: un.Achievement.ID,
			UserID:        h.userID,
			Name:          un.Achievement.Name,
			Rarity:        string(un.Achievement.Rarity),
			XPReward:      un.Achievement.XPReward,
			SessionID:     &sid,
		})
		if err != nil {
			return fmt.Errorf("record achievement unlock: %w", err)
		}
	}
	return nil
}

// outcomeFrom flattens a completed session into the ledger's input.
func outcomeFrom(sess *quiz.Session, score quiz.Score) progression.QuizOutcome {
	cfg := sess.Config()
	categories := make([]string, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories = append(categories, string(c))
	}

	correct := make(map[string]bool, len(sess.Answers()))
	for _, a := range sess.Answers() {
		correct[a.QuestionID] = a.Correct
	}

	var all, correctIDs []string
	seen := make(map[string]bool)
	for _, q := range sess.Questions() {
		id := q.IdiomID()
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
		}
		if correct[q.ID()] {
			correctIDs = append(correctIDs, id)
		}
	}

	return progression.QuizOutcome{
		SessionID:       sess.ID(),
		QuizType:        string(cfg.Type),
		Difficulty:      string(cfg.Difficulty),
		Categories:      categories,
		Correct:         score.CorrectAnswers,
		Total:           score.TotalQuestions,
		Percentage:      score.Percentage,
		Perfect:         score.Percentage == 100,
		Passed:          score.Passed,
		XPEarned:        score.Points,
		TimeSpent:       sess.Elapsed().Seconds(),
		AllIdiomIDs:     all,
		CorrectIdiomIDs: correctIDs,
		MarkLearned:     cfg.MarkLearned,
	}
}

// sampleFrom converts a completed session into an aggregator sample.
func sampleFrom(sess *quiz.Session, score quiz.Score, outcome progression.QuizOutcome) stats.Sample {
	questions := sess.Questions()
	answers := sess.Answers()

	byCategory := make(map[string]stats.CorrectTotal)
	for _, cp := range quiz.BreakdownByCategory(questions, answers) {
		byCategory[string(cp.Category)] = stats.CorrectTotal{Correct: cp.Correct, Total: cp.Total}
	}
	byDifficulty := make(map[string]stats.CorrectTotal)
	for _, dp := range quiz.BreakdownByDifficulty(questions, answers) {
		byDifficulty[string(dp.Difficulty)] = stats.CorrectTotal{Correct: dp.Correct, Total: dp.Total}
	}

	correctIDs := make(map[string]bool, len(outcome.CorrectIdiomIDs))
	for _, id := range outcome.CorrectIdiomIDs {
		correctIDs[id] = true
	}
	var missed []string
	for _, id := range outcome.AllIdiomIDs {
		if !correctIDs[id] {
			missed = append(missed, id)
		}
	}

	return stats.Sample{
		SessionID:    sess.ID(),
		Date:         sess.StartedAt(),
		QuizType:     outcome.QuizType,
		Difficulty:   outcome.Difficulty,
		ScorePercent: score.Percentage,
		Correct:      score.CorrectAnswers,
		Total:        score.TotalQuestions,
		TimeSpent:    outcome.TimeSpent,
		ByCategory:   byCategory,
		ByDifficulty: byDifficulty,
		MissedIdioms: missed,
	}
}
