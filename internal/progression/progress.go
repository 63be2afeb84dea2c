package progression

import "time"

// IdiomProgress tracks one learner's relationship with one idiom.
type IdiomProgress struct {
	Seen          bool      `json:"seen"`
	Learned       bool      `json:"learned"`
	Bookmarked    bool      `json:"bookmarked"`
	PracticeCount int       `json:"practiceCount"`
	LastPracticed time.Time `json:"lastPracticed,omitzero"`
}

// QuizRecord is one completed quiz in the history ledger.
type QuizRecord struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Correct        int       `json:"correct"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	TimeSpent      float64   `json:"timeSpent"` // seconds
	XPEarned       int       `json:"xpEarned"`
	QuizType       string    `json:"quizType"`
	Difficulty     string    `json:"difficulty"`
	Categories     []string  `json:"categories,omitempty"`
	Perfect        bool      `json:"perfect"`
	Passed         bool      `json:"passed"`
}

// DailyProgress is the activity bucket for one calendar date.
type DailyProgress struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	IdiomsLearned   int     `json:"idiomsLearned"`
	PracticeMinutes float64 `json:"practiceMinutes"`
	QuizzesTaken    int     `json:"quizzesTaken"`
	GoalMet         bool    `json:"goalMet"`
}

// WeeklyProgress is the activity bucket for one ISO week.
type WeeklyProgress struct {
	WeekStart     string  `json:"weekStart"` // YYYY-MM-DD of Monday
	IdiomsLearned int     `json:"idiomsLearned"`
	TotalXP       int     `json:"totalXP"`
	QuizzesTaken  int     `json:"quizzesTaken"`
	AccuracySum   int     `json:"accuracySum"` // sum of quiz percentages, for averaging
	StreakDays    int     `json:"streakDays"`
}

// AverageAccuracy returns the week's mean quiz percentage.
func (w WeeklyProgress) AverageAccuracy() float64 {
	if w.QuizzesTaken == 0 {
		return 0
	}
	return float64(w.AccuracySum) / float64(w.QuizzesTaken)
}

// LearningStats are derived long-run learning metrics, recomputed by the
// ledger after every transaction.
type LearningStats struct {
	TotalTimeMinutes     float64            `json:"totalTimeMinutes"`
	AverageSessionLength float64            `json:"averageSessionLength"` // minutes
	SessionsThisWeek     int                `json:"sessionsThisWeek"`
	SessionsThisMonth    int                `json:"sessionsThisMonth"`
	AccuracyByDifficulty map[string]float64 `json:"accuracyByDifficulty,omitempty"`
	LearningVelocity     float64            `json:"learningVelocity"` // idioms per week
	FavoriteCategories   []string           `json:"favoriteCategories,omitempty"`
}

// UserProgress is the aggregate root of a learner's cumulative state.
// It is mutated only through Ledger transactions; everything else reads
// snapshots.
type UserProgress struct {
	UserID        string    `json:"userId"`
	Level         int       `json:"level"`
	XP            int       `json:"xp"`
	XPToNextLevel int       `json:"xpToNextLevel"`
	Streak        int       `json:"streak"`
	LongestStreak int       `json:"longestStreak"`
	LastActive    time.Time `json:"lastActive,omitzero"`
	JoinedAt      time.Time `json:"joinedAt"`

	Idioms       map[string]*IdiomProgress `json:"idioms"`
	Achievements map[string]time.Time      `json:"achievements"` // id -> unlockedAt
	QuizHistory  []QuizRecord              `json:"quizHistory"`
	Stats        LearningStats             `json:"stats"`
	Daily        []DailyProgress           `json:"daily"`
	Weekly       []WeeklyProgress          `json:"weekly"`

	// Version increments on every committed transaction; used for
	// optimistic conflict detection by stores.
	Version int64 `json:"version"`
}

// New creates a fresh aggregate for a user at level 1.
func New(userID string, now time.Time, curve Curve) *UserProgress {
	p := &UserProgress{
		UserID:       userID,
		Level:        1,
		JoinedAt:     now,
		Idioms:       make(map[string]*IdiomProgress),
		Achievements: make(map[string]time.Time),
	}
	p.XPToNextLevel = curve.XPToNext(0)
	return p
}

// Clone deep-copies the aggregate so transactions never mutate the
// snapshot a reader still holds.
func (p *UserProgress) Clone() *UserProgress {
	c := *p

	c.Idioms = make(map[string]*IdiomProgress, len(p.Idioms))
	for id, ip := range p.Idioms {
		cp := *ip
		c.Idioms[id] = &cp
	}
	c.Achievements = make(map[string]time.Time, len(p.Achievements))
	for id, at := range p.Achievements {
		c.Achievements[id] = at
	}
	c.QuizHistory = append([]QuizRecord(nil), p.QuizHistory...)
	c.Daily = append([]DailyProgress(nil), p.Daily...)
	c.Weekly = append([]WeeklyProgress(nil), p.Weekly...)

	c.Stats.AccuracyByDifficulty = make(map[string]float64, len(p.Stats.AccuracyByDifficulty))
	for k, v := range p.Stats.AccuracyByDifficulty {
		c.Stats.AccuracyByDifficulty[k] = v
	}
	c.Stats.FavoriteCategories = append([]string(nil), p.Stats.FavoriteCategories...)

	return &c
}

// idiomProgress returns the progress record for an idiom, creating it
// on first reference.
func (p *UserProgress) idiomProgress(id string) *IdiomProgress {
	ip, ok := p.Idioms[id]
	if !ok {
		ip = &IdiomProgress{}
		p.Idioms[id] = ip
	}
	return ip
}

// LearnedCount returns the number of idioms marked learned.
func (p *UserProgress) LearnedCount() int {
	n := 0
	for _, ip := range p.Idioms {
		if ip.Learned {
			n++
		}
	}
	return n
}

// LearnedIdioms returns the ids of learned idioms.
func (p *UserProgress) LearnedIdioms() []string {
	var out []string
	for id, ip := range p.Idioms {
		if ip.Learned {
			out = append(out, id)
		}
	}
	return out
}

// BookmarkedIdioms returns the ids of bookmarked idioms.
func (p *UserProgress) BookmarkedIdioms() []string {
	var out []string
	for id, ip := range p.Idioms {
		if ip.Bookmarked {
			out = append(out, id)
		}
	}
	return out
}

// Unlocked reports whether an achievement has been unlocked.
func (p *UserProgress) Unlocked(achievementID string) bool {
	_, ok := p.Achievements[achievementID]
	return ok
}

// BestAccuracy returns the highest quiz percentage in history.
func (p *UserProgress) BestAccuracy() int {
	best := 0
	for _, r := range p.QuizHistory {
		if r.Percentage > best {
			best = r.Percentage
		}
	}
	return best
}
