package quiz

import (
	"time"

	"github.com/abhisek/idiomaster/internal/idiom"
)

// DefaultPassingScore is used when a config leaves PassingScore unset.
const DefaultPassingScore = 60

// DefaultQuestionCount is used when a config leaves QuestionCount unset.
const DefaultQuestionCount = 5

// Config describes one quiz session.
type Config struct {
	// Type selects the question variant, or TypeMixed for a rotation
	// of all four.
	Type Type

	// Difficulty filters source idioms. Empty means any difficulty.
	Difficulty idiom.Difficulty

	// Categories filters source idioms. Empty means all categories.
	Categories []idiom.Category

	// QuestionCount is the number of questions to generate.
	QuestionCount int

	// TimeLimit bounds the whole session. Zero means untimed.
	TimeLimit time.Duration

	// PerQuestionLimit bounds each question. Zero means unbounded.
	PerQuestionLimit time.Duration

	ShuffleQuestions bool
	ShuffleOptions   bool

	// PassingScore is the minimum percentage to pass. Zero means
	// DefaultPassingScore.
	PassingScore int

	ShowExplanations bool
	AllowReview      bool

	// MarkLearned controls whether correctly answered idioms are marked
	// learned (true) or merely seen (false) when results are applied.
	MarkLearned bool
}

// EffectivePassingScore resolves the passing score default.
func (c Config) EffectivePassingScore() int {
	if c.PassingScore <= 0 {
		return DefaultPassingScore
	}
	return c.PassingScore
}

// EffectiveQuestionCount resolves the question count default.
func (c Config) EffectiveQuestionCount() int {
	if c.QuestionCount <= 0 {
		return DefaultQuestionCount
	}
	return c.QuestionCount
}
