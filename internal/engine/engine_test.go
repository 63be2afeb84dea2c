package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/idiomaster/internal/config"
	"github.com/abhisek/idiomaster/internal/quiz"
	"github.com/abhisek/idiomaster/internal/store"
)

// testClock is a hand-advanced clock so sessions and streaks are
// deterministic.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *testClock, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	clock := newTestClock()
	eng := New(Options{
		Config:    config.Default(),
		Snapshots: s.SnapshotRepo(),
		Events:    s.EventRepo(),
		Now:       clock.Now,
	})
	return eng, clock, s
}

func beginnerQuiz() quiz.Config {
	return quiz.Config{
		Type:          quiz.TypeMultipleChoice,
		Difficulty:    "beginner",
		QuestionCount: 5,
		MarkLearned:   true,
	}
}

// correctOption returns the id of a question's correct option.
func correctOption(t *testing.T, q quiz.Question) string {
	t.Helper()
	mc, ok := q.(quiz.MultipleChoice)
	if !ok {
		t.Fatalf("question %s is %T, want MultipleChoice", q.ID(), q)
	}
	for _, o := range mc.Options {
		if o.Correct {
			return o.ID
		}
	}
	t.Fatalf("question %s has no correct option", q.ID())
	return ""
}

func TestQuizFlowEndToEnd(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, "lea", beginnerQuiz())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	questions := sess.Questions()
	if len(questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(questions))
	}

	// Answer the first three correctly, the last two wrong.
	var results *quiz.Results
	for i, q := range questions {
		clock.Advance(10 * time.Second)
		raw := correctOption(t, q)
		if i >= 3 {
			raw = "not-an-option"
		}
		_, results, err = eng.SubmitAnswer(ctx, sess.ID(), q.ID(), raw)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if results == nil {
		t.Fatal("expected results after the final answer")
	}
	if results.Score.CorrectAnswers != 3 {
		t.Errorf("correct = %d, want 3", results.Score.CorrectAnswers)
	}
	if results.Score.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", results.Score.Percentage)
	}
	if !results.Score.Passed {
		t.Error("expected quiz passed at the default passing score")
	}
	if results.Score.Grade != quiz.GradeD {
		t.Errorf("grade = %s, want D", results.Score.Grade)
	}
	if results.XPEarned != 30 {
		t.Errorf("xp earned = %d, want 30 (3 beginner questions)", results.XPEarned)
	}
	if !results.StreakInfo.Maintained || results.StreakInfo.CurrentStreak != 1 {
		t.Errorf("streak = %+v, want maintained with streak 1", results.StreakInfo)
	}

	wantUnlocks := map[string]bool{"first-quiz": true, "first-steps": true}
	for _, id := range results.AchievementsUnlocked {
		if !wantUnlocks[id] {
			t.Errorf("unexpected unlock %s", id)
		}
		delete(wantUnlocks, id)
	}
	for id := range wantUnlocks {
		t.Errorf("missing unlock %s", id)
	}

	// Ledger state after the pipeline.
	p, err := eng.Progress(ctx, "lea")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.XP != 50 { // 30 quiz + 10 first-quiz + 10 first-steps
		t.Errorf("xp = %d, want 50", p.XP)
	}
	if p.LearnedCount() != 3 {
		t.Errorf("learned = %d, want 3", p.LearnedCount())
	}
	if len(p.QuizHistory) != 1 {
		t.Errorf("history = %d, want 1", len(p.QuizHistory))
	}

	stats, err := eng.Statistics(ctx, "lea")
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalQuizzes != 1 {
		t.Errorf("total quizzes = %d, want 1", stats.TotalQuizzes)
	}
	if stats.BestScore != 60 {
		t.Errorf("best score = %d, want 60", stats.BestScore)
	}

	records, err := eng.History(ctx, "lea", 10)
	if err != nil {
		t.Fatalf("history query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("persisted results = %d, want 1", len(records))
	}
	if records[0].Grade != "D" || records[0].Percentage != 60 {
		t.Errorf("persisted record = %+v", records[0])
	}

	// Results are cached, not recomputed.
	again, err := eng.Results(ctx, sess.ID())
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if again != results {
		t.Error("expected cached results on second call")
	}
}

func TestTimeoutFillsUnanswered(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	ctx := context.Background()

	cfg := beginnerQuiz()
	cfg.TimeLimit = time.Minute
	sess, err := eng.StartSession(ctx, "lea", cfg)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	questions := sess.Questions()

	// Answer 3 of 5, then let the clock run out.
	for i := 0; i < 3; i++ {
		clock.Advance(10 * time.Second)
		if _, _, err := eng.SubmitAnswer(ctx, sess.ID(), questions[i].ID(), correctOption(t, questions[i])); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	clock.Advance(2 * time.Minute)

	results, done, err := eng.Tick(ctx, sess.ID())
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if !done {
		t.Fatal("expected the deadline to complete the session")
	}
	if !sess.TimedOut() {
		t.Error("expected the session marked timed out")
	}
	if got := len(results.Answers); got != 5 {
		t.Fatalf("answers = %d, want 5 (timeout fills the rest)", got)
	}
	for i := 3; i < 5; i++ {
		a := results.Answers[i]
		if a.Correct || a.PointsEarned != 0 {
			t.Errorf("answer %d = %+v, want incorrect zero-point fill", i, a)
		}
	}
	if results.Score.Percentage != 60 {
		t.Errorf("percentage = %d, want 60", results.Score.Percentage)
	}
}

func TestAbandonNeverTouchesProgress(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, "lea", beginnerQuiz())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	q := sess.Questions()[0]
	clock.Advance(5 * time.Second)
	if _, _, err := eng.SubmitAnswer(ctx, sess.ID(), q.ID(), correctOption(t, q)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := eng.AbandonSession(ctx, sess.ID()); err != nil {
		t.Fatalf("abandon: %v", err)
	}

	p, err := eng.Progress(ctx, "lea")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.XP != 0 || len(p.QuizHistory) != 0 {
		t.Errorf("abandoned session leaked into progress: xp=%d history=%d", p.XP, len(p.QuizHistory))
	}

	var stateErr *quiz.InvalidStateError
	if _, err := eng.Results(ctx, sess.ID()); !errors.As(err, &stateErr) {
		t.Errorf("results after abandon = %v, want InvalidStateError", err)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	ctx := context.Background()

	cfg := beginnerQuiz()
	cfg.TimeLimit = time.Minute
	sess, err := eng.StartSession(ctx, "lea", cfg)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	clock.Advance(30 * time.Second)
	if err := eng.PauseSession(sess.ID()); err != nil {
		t.Fatalf("pause: %v", err)
	}

	// Paused time never counts against the limit.
	clock.Advance(time.Hour)
	if err := eng.ResumeSession(sess.ID()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if _, done, err := eng.Tick(ctx, sess.ID()); err != nil || done {
		t.Fatalf("tick after resume: done=%v err=%v, want running session", done, err)
	}

	rem, ok := sess.Remaining()
	if !ok || rem != 30*time.Second {
		t.Errorf("remaining = %v (%v), want 30s", rem, ok)
	}
}

func TestSessionNotFound(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, _, err := eng.SubmitAnswer(ctx, "nope", "q", "a"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("submit = %v, want ErrSessionNotFound", err)
	}
	if _, err := eng.Results(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("results = %v, want ErrSessionNotFound", err)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	eng, clock, s := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, "lea", beginnerQuiz())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	for _, q := range sess.Questions() {
		clock.Advance(5 * time.Second)
		if _, _, err := eng.SubmitAnswer(ctx, sess.ID(), q.ID(), correctOption(t, q)); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	// A fresh engine over the same store restores the aggregate and
	// the rolling statistics from the latest snapshot.
	eng2 := New(Options{
		Config:    config.Default(),
		Snapshots: s.SnapshotRepo(),
		Events:    s.EventRepo(),
		Now:       clock.Now,
	})

	p, err := eng2.Progress(ctx, "lea")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.XP == 0 || len(p.QuizHistory) != 1 {
		t.Errorf("restored progress xp=%d history=%d, want persisted state", p.XP, len(p.QuizHistory))
	}

	st, err := eng2.Statistics(ctx, "lea")
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if st.TotalQuizzes != 1 {
		t.Errorf("restored total quizzes = %d, want 1", st.TotalQuizzes)
	}
}

func TestToggleBookmark(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	marked, err := eng.ToggleBookmark(ctx, "lea", "break-the-ice")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !marked {
		t.Error("expected bookmark set")
	}

	marked, err = eng.ToggleBookmark(ctx, "lea", "break-the-ice")
	if err != nil {
		t.Fatalf("toggle again: %v", err)
	}
	if marked {
		t.Error("expected bookmark cleared")
	}

	if _, err := eng.ToggleBookmark(ctx, "lea", "no-such-idiom"); err == nil {
		t.Error("expected error for unknown idiom")
	}
}

func TestPerfectScoreUnlock(t *testing.T) {
	eng, clock, _ := newTestEngine(t)
	ctx := context.Background()

	sess, err := eng.StartSession(ctx, "lea", beginnerQuiz())
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	var results *quiz.Results
	for _, q := range sess.Questions() {
		clock.Advance(5 * time.Second)
		if _, results, err = eng.SubmitAnswer(ctx, sess.ID(), q.ID(), correctOption(t, q)); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if results.Score.Percentage != 100 {
		t.Fatalf("percentage = %d, want 100", results.Score.Percentage)
	}
	found := false
	for _, id := range results.AchievementsUnlocked {
		if id == "perfectionist" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocks = %v, want perfectionist included", results.AchievementsUnlocked)
	}
}
