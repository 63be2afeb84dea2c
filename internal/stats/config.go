package stats

// Config holds the recommendation heuristics' tunables.
type Config struct {
	// AccuracyThreshold is the rolling category accuracy below which a
	// practice-category recommendation fires (0.0-1.0).
	AccuracyThreshold float64

	// ReviewWindow is the number of recent sessions scanned for idioms
	// missed twice (the review-idiom heuristic).
	ReviewWindow int

	// DifficultyStreak is the number of consecutive high-accuracy
	// sessions at one difficulty before try-difficulty fires.
	DifficultyStreak int

	// DifficultyAccuracy is the per-session accuracy counted as "high"
	// for the try-difficulty heuristic (0.0-1.0).
	DifficultyAccuracy float64

	// TrendWindow is the number of recent scores used for the
	// improvement trend.
	TrendWindow int
}

// DefaultConfig returns the standard heuristics.
func DefaultConfig() Config {
	return Config{
		AccuracyThreshold:  0.60,
		ReviewWindow:       5,
		DifficultyStreak:   3,
		DifficultyAccuracy: 0.85,
		TrendWindow:        10,
	}
}
