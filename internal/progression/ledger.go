package progression

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrLedgerConflict is returned when a transaction is attempted while
// another writer holds the same user's aggregate.
var ErrLedgerConflict = errors.New("concurrent update on user progress")

// QuizOutcome is the session summary a completed quiz feeds into the
// ledger. It is deliberately flat so the ledger stays independent of the
// session machinery.
type QuizOutcome struct {
	SessionID  string
	QuizType   string
	Difficulty string
	Categories []string

	Correct    int
	Total      int
	Percentage int
	Perfect    bool
	Passed     bool

	XPEarned  int
	TimeSpent float64 // seconds

	// AllIdiomIDs are the idioms the session presented;
	// CorrectIdiomIDs the subset answered correctly.
	AllIdiomIDs     []string
	CorrectIdiomIDs []string

	// MarkLearned marks correctly answered idioms as learned; when
	// false they are only marked seen.
	MarkLearned bool
}

// Ledger owns all mutation of UserProgress aggregates. Every committed
// transaction clones the aggregate, applies all of its steps, and bumps
// the version; readers never observe a partial update. Each user is a
// single-writer resource: a transaction attempted while another is in
// flight for the same user fails with ErrLedgerConflict and must be
// retried with a freshly loaded aggregate.
type Ledger struct {
	curve     Curve
	now       func() time.Time
	dailyGoal int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLedger creates a ledger with an injected clock. dailyGoal is the
// number of quizzes per day that marks the daily goal met; zero disables
// goal tracking.
func NewLedger(curve Curve, now func() time.Time, dailyGoal int) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		curve:     curve,
		now:       now,
		dailyGoal: dailyGoal,
		locks:     make(map[string]*sync.Mutex),
	}
}

// Curve exposes the active level curve.
func (l *Ledger) Curve() Curve { return l.curve }

func (l *Ledger) userLock(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// acquire takes the user's single-writer lock without queueing; a held
// lock means a concurrent transaction, surfaced as a conflict rather
// than silently serializing a stale write.
func (l *Ledger) acquire(userID string) (release func(), err error) {
	m := l.userLock(userID)
	if !m.TryLock() {
		return nil, ErrLedgerConflict
	}
	return m.Unlock, nil
}

// ApplyQuizResult folds one completed quiz into the aggregate: history,
// XP and level, streak, idiom learned/seen marks, and the daily/weekly
// buckets, all applied to a clone and returned together, never
// partially. The passed-in aggregate is not modified.
func (l *Ledger) ApplyQuizResult(p *UserProgress, o QuizOutcome) (*UserProgress, StreakResult, error) {
	release, err := l.acquire(p.UserID)
	if err != nil {
		return nil, StreakResult{}, err
	}
	defer release()

	now := l.now()
	c := p.Clone()

	// 1. History.
	c.QuizHistory = append(c.QuizHistory, QuizRecord{
		ID:             o.SessionID,
		Date:           now,
		Correct:        o.Correct,
		TotalQuestions: o.Total,
		Percentage:     o.Percentage,
		TimeSpent:      o.TimeSpent,
		XPEarned:       o.XPEarned,
		QuizType:       o.QuizType,
		Difficulty:     o.Difficulty,
		Categories:     append([]string(nil), o.Categories...),
		Perfect:        o.Perfect,
		Passed:         o.Passed,
	})

	// 2. XP and level.
	l.GrantXP(c, o.XPEarned)

	// 3. Streak.
	streak := advanceStreak(c, now)

	// 4. Idiom marks.
	newlyLearned := 0
	for _, id := range o.AllIdiomIDs {
		ip := c.idiomProgress(id)
		ip.Seen = true
		ip.PracticeCount++
		ip.LastPracticed = now
	}
	for _, id := range o.CorrectIdiomIDs {
		ip := c.idiomProgress(id)
		if o.MarkLearned && !ip.Learned {
			ip.Learned = true
			newlyLearned++
		}
	}

	// 5. Date buckets and derived stats.
	l.updateBuckets(c, o, newlyLearned, now)
	recomputeStats(c, now)

	c.Version++
	return c, streak, nil
}

// GrantXP adds xp to the aggregate and recomputes level fields from the
// curve. Used by step 2 above and re-entered for achievement rewards.
// Returns whether a level boundary was crossed.
func (l *Ledger) GrantXP(p *UserProgress, xp int) bool {
	if xp < 0 {
		xp = 0
	}
	before := p.Level
	p.XP += xp
	p.Level = l.curve.LevelFor(p.XP)
	p.XPToNextLevel = l.curve.XPToNext(p.XP)
	return p.Level > before
}

// UnlockAchievement records an unlock at most once and grants its XP
// reward through the normal XP path. Returns false if the achievement
// was already unlocked (the ledger never double-awards).
func (l *Ledger) UnlockAchievement(p *UserProgress, achievementID string, xpReward int, at time.Time) bool {
	if _, done := p.Achievements[achievementID]; done {
		return false
	}
	p.Achievements[achievementID] = at
	l.GrantXP(p, xpReward)
	return true
}

// ToggleBookmark flips an idiom's bookmark flag in a new transaction.
func (l *Ledger) ToggleBookmark(p *UserProgress, idiomID string) (*UserProgress, bool, error) {
	release, err := l.acquire(p.UserID)
	if err != nil {
		return nil, false, err
	}
	defer release()

	c := p.Clone()
	ip := c.idiomProgress(idiomID)
	ip.Bookmarked = !ip.Bookmarked
	c.Version++
	return c, ip.Bookmarked, nil
}

func (l *Ledger) updateBuckets(p *UserProgress, o QuizOutcome, newlyLearned int, now time.Time) {
	day := dateKey(now)
	if len(p.Daily) == 0 || p.Daily[len(p.Daily)-1].Date != day {
		p.Daily = append(p.Daily, DailyProgress{Date: day})
	}
	d := &p.Daily[len(p.Daily)-1]
	d.IdiomsLearned += newlyLearned
	d.PracticeMinutes += o.TimeSpent / 60
	d.QuizzesTaken++
	if l.dailyGoal > 0 && d.QuizzesTaken >= l.dailyGoal {
		d.GoalMet = true
	}

	week := weekStart(now)
	if len(p.Weekly) == 0 || p.Weekly[len(p.Weekly)-1].WeekStart != week {
		p.Weekly = append(p.Weekly, WeeklyProgress{WeekStart: week})
	}
	w := &p.Weekly[len(p.Weekly)-1]
	w.IdiomsLearned += newlyLearned
	w.TotalXP += o.XPEarned
	w.QuizzesTaken++
	w.AccuracySum += o.Percentage
	if w.StreakDays < p.Streak {
		w.StreakDays = p.Streak
	}
}

// recomputeStats refreshes the derived LearningStats from history and
// the date buckets.
func recomputeStats(p *UserProgress, now time.Time) {
	s := LearningStats{
		AccuracyByDifficulty: make(map[string]float64),
	}

	type acc struct{ sum, n int }
	byDiff := make(map[string]*acc)
	catCount := make(map[string]int)

	week := weekStart(now)
	y, m, _ := now.Date()

	for _, r := range p.QuizHistory {
		s.TotalTimeMinutes += r.TimeSpent / 60
		if weekStart(r.Date) == week {
			s.SessionsThisWeek++
		}
		ry, rm, _ := r.Date.Date()
		if ry == y && rm == m {
			s.SessionsThisMonth++
		}
		a := byDiff[r.Difficulty]
		if a == nil {
			a = &acc{}
			byDiff[r.Difficulty] = a
		}
		a.sum += r.Percentage
		a.n++
		for _, c := range r.Categories {
			catCount[c]++
		}
	}

	if n := len(p.QuizHistory); n > 0 {
		s.AverageSessionLength = s.TotalTimeMinutes / float64(n)
	}
	for d, a := range byDiff {
		s.AccuracyByDifficulty[d] = float64(a.sum) / float64(a.n)
	}

	// Velocity: idioms learned over the trailing four weeks.
	cutoff := dateKey(now.AddDate(0, 0, -28))
	learned := 0
	for _, d := range p.Daily {
		if d.Date > cutoff {
			learned += d.IdiomsLearned
		}
	}
	s.LearningVelocity = float64(learned) / 4

	cats := make([]string, 0, len(catCount))
	for c := range catCount {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		if catCount[cats[i]] != catCount[cats[j]] {
			return catCount[cats[i]] > catCount[cats[j]]
		}
		return cats[i] < cats[j]
	})
	if len(cats) > 3 {
		cats = cats[:3]
	}
	s.FavoriteCategories = cats

	p.Stats = s
}
