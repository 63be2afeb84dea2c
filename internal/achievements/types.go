package achievements

import "time"

// Rarity is the scarcity tier of an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Type groups achievements by what they reward.
type Type string

const (
	TypeLearning Type = "learning"
	TypePractice Type = "practice"
	TypeStreak   Type = "streak"
	TypeQuiz     Type = "quiz"
	TypeSpecial  Type = "special"
)

// Requirement is a declarative predicate over ledger fields. Zero-value
// fields are unspecified; all specified fields must hold (conjunction).
type Requirement struct {
	// IdiomsLearned is the minimum learned-idiom count.
	IdiomsLearned int `yaml:"idiomsLearned,omitempty"`
	// StreakDays is the minimum daily streak length.
	StreakDays int `yaml:"streakDays,omitempty"`
	// QuizAccuracy is the minimum best quiz percentage.
	QuizAccuracy int `yaml:"quizAccuracy,omitempty"`
	// TotalXP is the minimum cumulative XP.
	TotalXP int `yaml:"totalXP,omitempty"`
	// Actions are named tokens the caller must have emitted, such as
	// "first-quiz" or "perfect-score".
	Actions []string `yaml:"actions,omitempty"`
}

// Empty reports whether no field is specified.
func (r Requirement) Empty() bool {
	return r.IdiomsLearned == 0 && r.StreakDays == 0 && r.QuizAccuracy == 0 &&
		r.TotalXP == 0 && len(r.Actions) == 0
}

// Achievement is a global definition from the catalog; per-user unlock
// state lives in the progression ledger.
type Achievement struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Icon        string      `yaml:"icon,omitempty"`
	Type        Type        `yaml:"type"`
	Rarity      Rarity      `yaml:"rarity"`
	XPReward    int         `yaml:"xpReward"`
	Requirement Requirement `yaml:"requirement"`
	Hidden      bool        `yaml:"hidden,omitempty"`
}

// Unlock is a newly unlocked achievement with its unlock time.
type Unlock struct {
	Achievement Achievement
	UnlockedAt  time.Time
}

// Progress is the partial-progress fraction toward a locked
// achievement, for progress-bar display.
type Progress struct {
	AchievementID string
	Fraction      float64 // 0.0-1.0
}
