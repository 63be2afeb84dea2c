package quiz

import (
	"sync"
	"time"
)

// State is a quiz session lifecycle state.
type State string

const (
	StateNotStarted State = "not-started"
	StateInProgress State = "in-progress"
	StatePaused     State = "paused"
	StateCompleted  State = "completed"
	StateAbandoned  State = "abandoned"
)

// Terminal reports whether no transition leaves the state.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateAbandoned
}

// Session runs one quiz from start to finish. All mutation goes through
// the methods below, each of which holds the session lock, so concurrent
// callers are serialized; a call that would break in-order submission is
// rejected rather than queued out of order.
//
// Time only accrues while in-progress. Deadlines are explicit: they are
// checked on every Submit and Tick rather than by background timers, so
// the session carries no hidden concurrency. The injected clock keeps
// transitions deterministic under test.
type Session struct {
	mu sync.Mutex

	id        string
	cfg       Config
	questions []Question
	index     int
	answers   []Answer
	state     State
	timedOut  bool

	now func() time.Time

	startedAt time.Time
	// elapsed is active time accumulated before lastResumed.
	elapsed     time.Duration
	lastResumed time.Time
	// questionElapsed is active time spent on the current question
	// before questionStarted.
	questionElapsed time.Duration
	questionStarted time.Time
}

// NewSession creates a session in the not-started state. The question
// list is owned by the session and must not be mutated by the caller.
func NewSession(id string, cfg Config, questions []Question, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		id:        id,
		cfg:       cfg,
		questions: questions,
		state:     StateNotStarted,
		now:       now,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Questions returns the ordered question list.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// the session is finished.
func (s *Session) CurrentQuestion() Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.questions) {
		return nil
	}
	return s.questions[s.index]
}

// TimedOut reports whether completion was forced by a deadline.
func (s *Session) TimedOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timedOut
}

// StartedAt returns the session start time (zero before Start).
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Elapsed returns the active (unpaused) time spent so far.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeElapsedLocked(s.now())
}

// Remaining returns the remaining session time budget, or zero duration
// and false if the session is untimed.
func (s *Session) Remaining() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.TimeLimit <= 0 {
		return 0, false
	}
	rem := s.cfg.TimeLimit - s.activeElapsedLocked(s.now())
	if rem < 0 {
		rem = 0
	}
	return rem, true
}

// Start begins the quiz. Valid only from not-started, with at least one
// question.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted {
		return &InvalidStateError{Op: "start", State: s.state}
	}
	if len(s.questions) == 0 {
		return ErrEmptyQuiz
	}

	now := s.now()
	s.state = StateInProgress
	s.startedAt = now
	s.lastResumed = now
	s.questionStarted = now
	return nil
}

// Submit records an answer for the question at the current index.
// Questions must be answered in order; answers are append-only. When the
// last question is answered the session auto-transitions to completed.
func (s *Session) Submit(questionID, raw string) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.checkDeadlineLocked(now)

	if s.state != StateInProgress {
		return Answer{}, &InvalidStateError{Op: "submit", State: s.state}
	}

	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return Answer{}, &DuplicateAnswerError{QuestionID: questionID}
		}
	}

	q := s.questions[s.index]
	if q.ID() != questionID {
		return Answer{}, &InvalidStateError{Op: "submit out of order", State: s.state}
	}

	result, err := ScoreAnswer(q, raw)
	if err != nil {
		return Answer{}, err
	}

	spent := s.questionElapsed + now.Sub(s.questionStarted)
	ans := Answer{
		QuestionID:   questionID,
		Value:        raw,
		Correct:      result.Correct,
		TimeSpent:    spent.Seconds(),
		PointsEarned: result.Points,
		AnsweredAt:   now,
	}
	s.answers = append(s.answers, ans)
	s.index++
	s.questionElapsed = 0
	s.questionStarted = now

	if s.index >= len(s.questions) {
		s.completeLocked(now)
	}
	return ans, nil
}

// Pause freezes the elapsed-time accumulator. Valid only in-progress.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.checkDeadlineLocked(now)

	if s.state != StateInProgress {
		return &InvalidStateError{Op: "pause", State: s.state}
	}
	s.elapsed += now.Sub(s.lastResumed)
	s.questionElapsed += now.Sub(s.questionStarted)
	s.state = StatePaused
	return nil
}

// Resume continues a paused session. A timed session's remaining budget
// is unchanged by the pause.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		return &InvalidStateError{Op: "resume", State: s.state}
	}
	now := s.now()
	s.state = StateInProgress
	s.lastResumed = now
	s.questionStarted = now
	return nil
}

// Abandon terminates the session without results. Valid from in-progress
// or paused; abandoned sessions never touch the ledger.
func (s *Session) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress && s.state != StatePaused {
		return &InvalidStateError{Op: "abandon", State: s.state}
	}
	now := s.now()
	if s.state == StateInProgress {
		s.elapsed += now.Sub(s.lastResumed)
	}
	s.state = StateAbandoned
	return nil
}

// Tick advances deadline checks; an external scheduler calls it for
// timed sessions. It reports whether the session is completed after the
// check, so the caller knows to collect results.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkDeadlineLocked(s.now())
	return s.state == StateCompleted
}

// Score computes the session's score snapshot. Meaningful once the
// session has completed.
func (s *Session) Score(bands []GradeBand) Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeScore(s.questions, s.answers, s.cfg.EffectivePassingScore(), bands)
}

func (s *Session) activeElapsedLocked(now time.Time) time.Duration {
	if s.state == StateInProgress {
		return s.elapsed + now.Sub(s.lastResumed)
	}
	return s.elapsed
}

// checkDeadlineLocked enforces the session and per-question clocks.
// Exceeding either records every unanswered question as an incorrect,
// zero-point answer and completes the session. This is the only path
// that completes a session without every question being answered.
func (s *Session) checkDeadlineLocked(now time.Time) {
	if s.state != StateInProgress {
		return
	}

	exceeded := false
	if s.cfg.TimeLimit > 0 && s.activeElapsedLocked(now) >= s.cfg.TimeLimit {
		exceeded = true
	}
	if !exceeded && s.cfg.PerQuestionLimit > 0 {
		spent := s.questionElapsed + now.Sub(s.questionStarted)
		if spent >= s.cfg.PerQuestionLimit {
			exceeded = true
		}
	}
	if !exceeded {
		return
	}

	for ; s.index < len(s.questions); s.index++ {
		s.answers = append(s.answers, Answer{
			QuestionID: s.questions[s.index].ID(),
			AnsweredAt: now,
		})
	}
	s.timedOut = true
	s.completeLocked(now)
}

func (s *Session) completeLocked(now time.Time) {
	s.elapsed += now.Sub(s.lastResumed)
	s.lastResumed = now
	s.state = StateCompleted
}
