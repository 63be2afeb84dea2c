package progression

import (
	"testing"
	"time"
)

func day(d int, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	p := New("lea", day(1, 9), DefaultCurve())
	res := advanceStreak(p, day(1, 9))
	if !res.Maintained || res.Broken {
		t.Fatalf("first activity: got %+v", res)
	}
	if p.Streak != 1 || p.LongestStreak != 1 {
		t.Fatalf("streak = %d, longest = %d, want 1, 1", p.Streak, p.LongestStreak)
	}
}

func TestAdvanceStreakSameDay(t *testing.T) {
	p := New("lea", day(1, 9), DefaultCurve())
	advanceStreak(p, day(1, 9))
	res := advanceStreak(p, day(1, 22))
	if !res.Maintained {
		t.Fatal("same-day activity should maintain the streak")
	}
	if p.Streak != 1 {
		t.Fatalf("streak = %d after same-day repeat, want 1", p.Streak)
	}
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	p := New("lea", day(1, 9), DefaultCurve())
	for d := 1; d <= 5; d++ {
		advanceStreak(p, day(d, 9))
	}
	if p.Streak != 5 || p.LongestStreak != 5 {
		t.Fatalf("streak = %d, longest = %d, want 5, 5", p.Streak, p.LongestStreak)
	}
}

func TestAdvanceStreakMidnightBoundary(t *testing.T) {
	p := New("lea", day(1, 23), DefaultCurve())
	advanceStreak(p, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	res := advanceStreak(p, time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC))
	if !res.Maintained {
		t.Fatal("activity two minutes apart across midnight should count as consecutive days")
	}
	if p.Streak != 2 {
		t.Fatalf("streak = %d, want 2", p.Streak)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	p := New("lea", day(1, 9), DefaultCurve())
	advanceStreak(p, day(1, 9))
	advanceStreak(p, day(2, 9))
	res := advanceStreak(p, day(5, 9))
	if res.Maintained {
		t.Fatal("three-day gap should not maintain the streak")
	}
	if !res.Broken {
		t.Fatal("a streak above 1 should report broken on reset")
	}
	if p.Streak != 1 {
		t.Fatalf("streak = %d after gap, want 1", p.Streak)
	}
	if p.LongestStreak != 2 {
		t.Fatalf("longest = %d, want 2", p.LongestStreak)
	}
}

func TestAdvanceStreakGapFromOneNotBroken(t *testing.T) {
	p := New("lea", day(1, 9), DefaultCurve())
	advanceStreak(p, day(1, 9))
	res := advanceStreak(p, day(10, 9))
	if res.Broken {
		t.Fatal("resetting a 1-day streak is not a break worth reporting")
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), "2026-03-09"},  // Monday
		{time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC), "2026-03-09"}, // Wednesday
		{time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), "2026-03-09"}, // Sunday
		{time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), "2026-03-16"},  // next Monday
	}
	for _, tt := range tests {
		if got := weekStart(tt.in); got != tt.want {
			t.Errorf("weekStart(%s) = %q, want %q", tt.in.Format("2006-01-02"), got, tt.want)
		}
	}
}
