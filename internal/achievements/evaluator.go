package achievements

import "time"

// Input is the ledger snapshot an evaluation runs against, plus the
// session-scoped action tokens emitted by the caller.
type Input struct {
	IdiomsLearned int
	Streak        int
	// BestQuizAccuracy is the highest quiz percentage on record.
	BestQuizAccuracy int
	TotalXP          int
	// Actions are session-specific trigger tokens ("first-quiz",
	// "perfect-score", ...).
	Actions map[string]bool
	// Unlocked are achievement ids already unlocked for the user.
	Unlocked map[string]time.Time
}

// Evaluator decides which catalog achievements newly unlock for a
// ledger state. One generic matcher over declarative requirement
// records; no per-achievement logic.
type Evaluator struct {
	now func() time.Time
}

// NewEvaluator creates an evaluator with an injected clock.
func NewEvaluator(now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{now: now}
}

// Evaluate returns the achievements that newly unlock for in, plus the
// partial-progress fractions of those still locked. Already unlocked
// ids are skipped, so evaluating the same state twice never unlocks
// twice.
func (e *Evaluator) Evaluate(in Input, catalog []Achievement) (newly []Unlock, partial []Progress) {
	at := e.now()
	for _, a := range catalog {
		if _, done := in.Unlocked[a.ID]; done {
			continue
		}
		if a.Requirement.Empty() {
			// A definition with no requirement can never unlock.
			continue
		}
		if satisfied(a.Requirement, in) {
			newly = append(newly, Unlock{Achievement: a, UnlockedAt: at})
			continue
		}
		partial = append(partial, Progress{
			AchievementID: a.ID,
			Fraction:      fraction(a.Requirement, in),
		})
	}
	return newly, partial
}

// satisfied checks every specified requirement field (conjunction).
func satisfied(r Requirement, in Input) bool {
	if r.IdiomsLearned > 0 && in.IdiomsLearned < r.IdiomsLearned {
		return false
	}
	if r.StreakDays > 0 && in.Streak < r.StreakDays {
		return false
	}
	if r.QuizAccuracy > 0 && in.BestQuizAccuracy < r.QuizAccuracy {
		return false
	}
	if r.TotalXP > 0 && in.TotalXP < r.TotalXP {
		return false
	}
	for _, action := range r.Actions {
		if !in.Actions[action] {
			return false
		}
	}
	return true
}

// fraction computes min(1, observed/required) per specified threshold,
// averaged across thresholds. Actions count as met (1) or not (0).
func fraction(r Requirement, in Input) float64 {
	var sum float64
	n := 0

	ratio := func(observed, required int) {
		f := float64(observed) / float64(required)
		if f > 1 {
			f = 1
		}
		sum += f
		n++
	}

	if r.IdiomsLearned > 0 {
		ratio(in.IdiomsLearned, r.IdiomsLearned)
	}
	if r.StreakDays > 0 {
		ratio(in.Streak, r.StreakDays)
	}
	if r.QuizAccuracy > 0 {
		ratio(in.BestQuizAccuracy, r.QuizAccuracy)
	}
	if r.TotalXP > 0 {
		ratio(in.TotalXP, r.TotalXP)
	}
	for _, action := range r.Actions {
		if in.Actions[action] {
			sum++
		}
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
