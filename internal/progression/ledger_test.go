package progression

import (
	"errors"
	"testing"
	"time"
)

func testLedger(times ...time.Time) *Ledger {
	i := 0
	now := func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
	return NewLedger(DefaultCurve(), now, 1)
}

func passingOutcome(session string) QuizOutcome {
	return QuizOutcome{
		SessionID:       session,
		QuizType:        "multiple-choice",
		Difficulty:      "beginner",
		Categories:      []string{"animals"},
		Correct:         4,
		Total:           5,
		Percentage:      80,
		Passed:          true,
		XPEarned:        40,
		TimeSpent:       90,
		AllIdiomIDs:     []string{"i1", "i2", "i3", "i4", "i5"},
		CorrectIdiomIDs: []string{"i1", "i2", "i3", "i4"},
		MarkLearned:     true,
	}
}

func TestApplyQuizResult(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())

	updated, streak, err := l.ApplyQuizResult(p, passingOutcome("s1"))
	if err != nil {
		t.Fatal(err)
	}

	if len(updated.QuizHistory) != 1 {
		t.Fatalf("history length = %d, want 1", len(updated.QuizHistory))
	}
	rec := updated.QuizHistory[0]
	if rec.ID != "s1" || rec.Percentage != 80 || !rec.Passed {
		t.Errorf("unexpected history record: %+v", rec)
	}
	if updated.XP != 40 || updated.Level != 1 || updated.XPToNextLevel != 60 {
		t.Errorf("xp = %d level = %d toNext = %d, want 40 1 60",
			updated.XP, updated.Level, updated.XPToNextLevel)
	}
	if !streak.Maintained || updated.Streak != 1 {
		t.Errorf("streak = %d (%+v), want 1 maintained", updated.Streak, streak)
	}
	if got := updated.LearnedCount(); got != 4 {
		t.Errorf("learned = %d, want 4", got)
	}
	if ip := updated.Idioms["i5"]; ip == nil || !ip.Seen || ip.Learned {
		t.Errorf("missed idiom should be seen but not learned: %+v", ip)
	}
	if updated.Version != 1 {
		t.Errorf("version = %d, want 1", updated.Version)
	}
}

func TestApplyQuizResultDoesNotMutateInput(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())

	if _, _, err := l.ApplyQuizResult(p, passingOutcome("s1")); err != nil {
		t.Fatal(err)
	}
	if p.XP != 0 || len(p.QuizHistory) != 0 || len(p.Idioms) != 0 || p.Version != 0 {
		t.Fatalf("input aggregate was mutated: %+v", p)
	}
}

func TestApplyQuizResultLevelUp(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())
	p.XP = 95
	p.Level = 1

	o := passingOutcome("s1")
	o.XPEarned = 10
	updated, _, err := l.ApplyQuizResult(p, o)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Level != 2 {
		t.Fatalf("level = %d, want 2", updated.Level)
	}
	if updated.XPToNextLevel != 195 {
		t.Fatalf("xpToNext = %d, want 195", updated.XPToNextLevel)
	}
}

func TestApplyQuizResultLearnedIdempotent(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at, at.Add(time.Hour))
	p := New("lea", at, DefaultCurve())

	first, _, err := l.ApplyQuizResult(p, passingOutcome("s1"))
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := l.ApplyQuizResult(first, passingOutcome("s2"))
	if err != nil {
		t.Fatal(err)
	}

	if got := second.LearnedCount(); got != 4 {
		t.Fatalf("learned = %d after repeat quiz, want 4", got)
	}
	d := second.Daily[len(second.Daily)-1]
	if d.IdiomsLearned != 4 {
		t.Fatalf("daily idiomsLearned = %d, want 4 (re-learning counts nothing)", d.IdiomsLearned)
	}
	if ip := second.Idioms["i1"]; ip.PracticeCount != 2 {
		t.Fatalf("practiceCount = %d, want 2", ip.PracticeCount)
	}
}

func TestApplyQuizResultBuckets(t *testing.T) {
	morning := day(10, 9)
	evening := day(10, 20)
	nextDay := day(11, 9)
	l := testLedger(morning, evening, nextDay)
	p := New("lea", morning, DefaultCurve())

	p1, _, _ := l.ApplyQuizResult(p, passingOutcome("s1"))
	p2, _, _ := l.ApplyQuizResult(p1, passingOutcome("s2"))
	p3, _, _ := l.ApplyQuizResult(p2, passingOutcome("s3"))

	if len(p3.Daily) != 2 {
		t.Fatalf("daily buckets = %d, want 2", len(p3.Daily))
	}
	first := p3.Daily[0]
	if first.Date != "2026-03-10" || first.QuizzesTaken != 2 || !first.GoalMet {
		t.Errorf("first day bucket: %+v", first)
	}
	if len(p3.Weekly) != 1 {
		t.Fatalf("weekly buckets = %d, want 1", len(p3.Weekly))
	}
	w := p3.Weekly[0]
	if w.WeekStart != "2026-03-09" || w.QuizzesTaken != 3 || w.TotalXP != 120 {
		t.Errorf("weekly bucket: %+v", w)
	}
	if got := w.AverageAccuracy(); got != 80 {
		t.Errorf("weekly accuracy = %v, want 80", got)
	}
}

func TestApplyQuizResultDerivedStats(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at, at.Add(time.Hour))
	p := New("lea", at, DefaultCurve())

	p1, _, _ := l.ApplyQuizResult(p, passingOutcome("s1"))
	o := passingOutcome("s2")
	o.Difficulty = "advanced"
	o.Percentage = 60
	p2, _, err := l.ApplyQuizResult(p1, o)
	if err != nil {
		t.Fatal(err)
	}

	s := p2.Stats
	if s.TotalTimeMinutes != 3 {
		t.Errorf("totalTimeMinutes = %v, want 3", s.TotalTimeMinutes)
	}
	if s.SessionsThisWeek != 2 || s.SessionsThisMonth != 2 {
		t.Errorf("sessions week/month = %d/%d, want 2/2", s.SessionsThisWeek, s.SessionsThisMonth)
	}
	if got := s.AccuracyByDifficulty["beginner"]; got != 80 {
		t.Errorf("beginner accuracy = %v, want 80", got)
	}
	if got := s.AccuracyByDifficulty["advanced"]; got != 60 {
		t.Errorf("advanced accuracy = %v, want 60", got)
	}
	if len(s.FavoriteCategories) != 1 || s.FavoriteCategories[0] != "animals" {
		t.Errorf("favorite categories = %v", s.FavoriteCategories)
	}
}

func TestLedgerConflict(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())

	release, err := l.acquire("lea")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := l.ApplyQuizResult(p, passingOutcome("s1")); !errors.Is(err, ErrLedgerConflict) {
		t.Fatalf("err = %v, want ErrLedgerConflict", err)
	}
	release()

	if _, _, err := l.ApplyQuizResult(p, passingOutcome("s1")); err != nil {
		t.Fatalf("retry after release failed: %v", err)
	}
}

func TestLedgerConflictIsPerUser(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)

	release, err := l.acquire("lea")
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	other := New("nils", at, DefaultCurve())
	if _, _, err := l.ApplyQuizResult(other, passingOutcome("s1")); err != nil {
		t.Fatalf("unrelated user blocked: %v", err)
	}
}

func TestUnlockAchievement(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())

	if !l.UnlockAchievement(p, "first-steps", 10, at) {
		t.Fatal("first unlock should succeed")
	}
	if l.UnlockAchievement(p, "first-steps", 10, at.Add(time.Hour)) {
		t.Fatal("second unlock of the same achievement should be a no-op")
	}
	if p.XP != 10 {
		t.Fatalf("xp = %d, want 10 (awarded once)", p.XP)
	}
	if got := p.Achievements["first-steps"]; !got.Equal(at) {
		t.Fatalf("unlockedAt = %v, want %v", got, at)
	}
}

func TestToggleBookmark(t *testing.T) {
	at := day(10, 9)
	l := testLedger(at)
	p := New("lea", at, DefaultCurve())

	on, marked, err := l.ToggleBookmark(p, "i1")
	if err != nil {
		t.Fatal(err)
	}
	if !marked {
		t.Fatal("first toggle should bookmark")
	}
	if p.Idioms["i1"] != nil {
		t.Fatal("toggle mutated the input aggregate")
	}

	off, marked, err := l.ToggleBookmark(on, "i1")
	if err != nil {
		t.Fatal(err)
	}
	if marked || off.Idioms["i1"].Bookmarked {
		t.Fatal("second toggle should clear the bookmark")
	}
	if off.Version != 2 {
		t.Fatalf("version = %d, want 2", off.Version)
	}
}
