package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/idiomaster/internal/idiom"
)

func fiveQuestions() []Question {
	qs := make([]Question, 0, 5)
	for _, id := range []string{"q1", "q2", "q3", "q4", "q5"} {
		qs = append(qs, MultipleChoice{
			QuestionID: id,
			Idiom:      idiom.Idiom{ID: "idiom-" + id, Difficulty: idiom.DifficultyBeginner},
			Options: []Option{
				{ID: id + "-o0", Text: "right", Correct: true},
				{ID: id + "-o1", Text: "wrong"},
			},
			PointValue: 10,
		})
	}
	return qs
}

type sessionClock struct {
	t time.Time
}

func newSessionClock() *sessionClock {
	return &sessionClock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *sessionClock) Now() time.Time          { return c.t }
func (c *sessionClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func startedSession(t *testing.T, cfg Config, clock *sessionClock) *Session {
	t.Helper()
	s := NewSession("s1", cfg, fiveQuestions(), clock.Now)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestSessionLifecycle(t *testing.T) {
	clock := newSessionClock()
	s := NewSession("s1", Config{}, fiveQuestions(), clock.Now)

	if s.State() != StateNotStarted {
		t.Fatalf("state = %s, want not-started", s.State())
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in-progress", s.State())
	}
	if err := s.Start(); err == nil {
		t.Error("expected error starting twice")
	}
}

func TestSessionStartEmpty(t *testing.T) {
	s := NewSession("s1", Config{}, nil, newSessionClock().Now)
	if err := s.Start(); !errors.Is(err, ErrEmptyQuiz) {
		t.Errorf("start = %v, want ErrEmptyQuiz", err)
	}
}

// Three correct out of five at the default passing score: 60%, grade D,
// passed.
func TestSessionThreeOfFive(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{}, clock)

	for i, q := range s.Questions() {
		clock.Advance(10 * time.Second)
		raw := q.ID() + "-o0"
		if i >= 3 {
			raw = q.ID() + "-o1"
		}
		if _, err := s.Submit(q.ID(), raw); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if s.State() != StateCompleted {
		t.Fatalf("state = %s, want completed", s.State())
	}
	score := s.Score(DefaultGradeBands())
	if score.CorrectAnswers != 3 || score.Percentage != 60 {
		t.Errorf("score = %d correct %d%%, want 3 correct 60%%", score.CorrectAnswers, score.Percentage)
	}
	if !score.Passed || score.Grade != GradeD {
		t.Errorf("passed=%v grade=%s, want passed grade D", score.Passed, score.Grade)
	}
	if score.Points != 30 {
		t.Errorf("points = %d, want 30", score.Points)
	}
}

func TestSessionDuplicateAnswer(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{}, clock)
	q := s.Questions()[0]

	if _, err := s.Submit(q.ID(), q.ID()+"-o0"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	var dup *DuplicateAnswerError
	if _, err := s.Submit(q.ID(), q.ID()+"-o1"); !errors.As(err, &dup) {
		t.Fatalf("resubmit = %v, want DuplicateAnswerError", err)
	}
	if dup.QuestionID != q.ID() {
		t.Errorf("duplicate id = %s, want %s", dup.QuestionID, q.ID())
	}
}

func TestSessionOutOfOrder(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{}, clock)

	var stateErr *InvalidStateError
	if _, err := s.Submit("q3", "q3-o0"); !errors.As(err, &stateErr) {
		t.Errorf("out-of-order submit = %v, want InvalidStateError", err)
	}
	if len(s.Answers()) != 0 {
		t.Error("rejected submit must not record an answer")
	}
}

func TestSessionSubmitAfterTerminal(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{}, clock)
	if err := s.Abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}

	var stateErr *InvalidStateError
	if _, err := s.Submit("q1", "q1-o0"); !errors.As(err, &stateErr) {
		t.Errorf("submit on abandoned = %v, want InvalidStateError", err)
	}
	if err := s.Resume(); !errors.As(err, &stateErr) {
		t.Errorf("resume on abandoned = %v, want InvalidStateError", err)
	}
}

// Timeout with two of five unanswered: both recorded as incorrect
// zero-point answers, session completed without further input.
func TestSessionTimeoutFillsRemaining(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{TimeLimit: time.Minute}, clock)

	for i := 0; i < 3; i++ {
		clock.Advance(10 * time.Second)
		q := s.Questions()[i]
		if _, err := s.Submit(q.ID(), q.ID()+"-o0"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	clock.Advance(time.Minute)
	if !s.Tick() {
		t.Fatal("expected tick to complete the session")
	}
	if !s.TimedOut() {
		t.Error("expected timed-out flag")
	}

	answers := s.Answers()
	if len(answers) != 5 {
		t.Fatalf("answers = %d, want 5", len(answers))
	}
	for _, a := range answers[3:] {
		if a.Correct || a.PointsEarned != 0 {
			t.Errorf("filled answer = %+v, want incorrect zero-point", a)
		}
	}
	if s.Score(DefaultGradeBands()).Percentage != 60 {
		t.Errorf("percentage = %d, want 60", s.Score(DefaultGradeBands()).Percentage)
	}
}

func TestSessionPerQuestionLimit(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{PerQuestionLimit: 15 * time.Second}, clock)

	q := s.Questions()[0]
	clock.Advance(10 * time.Second)
	if _, err := s.Submit(q.ID(), q.ID()+"-o0"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Linger past the per-question budget on the second question.
	clock.Advance(20 * time.Second)
	if !s.Tick() {
		t.Fatal("expected per-question deadline to complete the session")
	}
	if len(s.Answers()) != 5 {
		t.Errorf("answers = %d, want 5", len(s.Answers()))
	}
}

func TestSessionPauseFreezesClocks(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{TimeLimit: time.Minute}, clock)

	clock.Advance(30 * time.Second)
	if err := s.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if s.State() != StatePaused {
		t.Fatalf("state = %s, want paused", s.State())
	}

	// A long pause burns none of the budget.
	clock.Advance(2 * time.Hour)
	if err := s.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s.Tick() {
		t.Fatal("session must still be running after resume")
	}
	if rem, ok := s.Remaining(); !ok || rem != 30*time.Second {
		t.Errorf("remaining = %v (%v), want 30s", rem, ok)
	}
	if got := s.Elapsed(); got != 30*time.Second {
		t.Errorf("elapsed = %v, want 30s", got)
	}
}

func TestSessionPauseInvalidStates(t *testing.T) {
	clock := newSessionClock()
	s := NewSession("s1", Config{}, fiveQuestions(), clock.Now)

	var stateErr *InvalidStateError
	if err := s.Pause(); !errors.As(err, &stateErr) {
		t.Errorf("pause before start = %v, want InvalidStateError", err)
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	if err := s.Pause(); !errors.As(err, &stateErr) {
		t.Errorf("double pause = %v, want InvalidStateError", err)
	}
}

func TestSessionAnswerTiming(t *testing.T) {
	clock := newSessionClock()
	s := startedSession(t, Config{}, clock)

	q := s.Questions()[0]
	clock.Advance(12 * time.Second)
	ans, err := s.Submit(q.ID(), q.ID()+"-o0")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ans.TimeSpent != 12 {
		t.Errorf("time spent = %v, want 12s", ans.TimeSpent)
	}

	// Pause mid-question; paused time must not count.
	q2 := s.Questions()[1]
	clock.Advance(5 * time.Second)
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Hour)
	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3 * time.Second)
	ans, err = s.Submit(q2.ID(), q2.ID()+"-o1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ans.TimeSpent != 8 {
		t.Errorf("time spent = %v, want 8s", ans.TimeSpent)
	}
}

func TestStateTerminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateNotStarted, false},
		{StateInProgress, false},
		{StatePaused, false},
		{StateCompleted, true},
		{StateAbandoned, true},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
