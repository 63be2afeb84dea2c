package progression

import "testing"

func TestCurveLevelFor(t *testing.T) {
	curve := DefaultCurve()
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
	}
	for _, tt := range tests {
		if got := curve.LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestCurveXPToNext(t *testing.T) {
	curve := DefaultCurve()
	tests := []struct {
		xp   int
		want int
	}{
		{0, 100},
		{95, 5},
		{100, 200},  // next threshold 300
		{105, 195},  // crossing 100 with 10 XP leaves 195 to level 3
		{300, 300},  // next threshold 600
	}
	for _, tt := range tests {
		if got := curve.XPToNext(tt.xp); got != tt.want {
			t.Errorf("XPToNext(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	curve := DefaultCurve()
	last := 0
	for xp := 0; xp <= 5000; xp += 50 {
		level := curve.LevelFor(xp)
		if level < last {
			t.Fatalf("LevelFor(%d) = %d dropped below %d", xp, level, last)
		}
		last = level
	}
}

func TestCurveTitles(t *testing.T) {
	curve := DefaultCurve()
	tests := []struct {
		level int
		want  string
	}{
		{1, "Newcomer"},
		{4, "Newcomer"},
		{5, "Phrase Finder"},
		{12, "Idiom Apprentice"},
		{50, "Idiom Master"},
		{60, "Idiom Master"},
	}
	for _, tt := range tests {
		if got := curve.TitleFor(tt.level); got != tt.want {
			t.Errorf("TitleFor(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
