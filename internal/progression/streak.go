package progression

import "time"

// StreakResult reports how an activity affected the daily streak.
type StreakResult struct {
	Maintained bool
	Broken     bool
}

// advanceStreak applies the calendar-day rule: same-day activity leaves
// the streak unchanged, next-day activity increments it by one, a gap of
// two or more days resets it to 1. First-ever activity also starts at 1.
// LastActive is always advanced to now.
func advanceStreak(p *UserProgress, now time.Time) StreakResult {
	result := StreakResult{Maintained: true}

	switch {
	case p.LastActive.IsZero():
		p.Streak = 1
	default:
		gap := daysBetween(p.LastActive, now)
		switch {
		case gap == 0:
			// Repeat activity on the same day: unchanged.
		case gap == 1:
			p.Streak++
		default:
			result.Maintained = false
			result.Broken = p.Streak > 1
			p.Streak = 1
		}
	}

	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}
	p.LastActive = now
	return result
}

// daysBetween counts calendar days from a to b in each time's own
// location, so a quiz at 23:59 and one at 00:01 the next day are one
// day apart.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// dateOnly maps a time to midnight UTC of its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateKey formats a time as the YYYY-MM-DD bucket key.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// weekStart returns the YYYY-MM-DD key of the Monday of t's week.
func weekStart(t time.Time) string {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset).Format("2006-01-02")
}
