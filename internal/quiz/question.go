package quiz

import (
	"time"

	"github.com/abhisek/idiomaster/internal/idiom"
)

// Type identifies a quiz or question variant.
type Type string

const (
	TypeMultipleChoice Type = "multiple-choice"
	TypeFillBlank      Type = "fill-blank"
	TypeMatchSituation Type = "match-situation"
	TypeAudio          Type = "audio"
	// TypeMixed is a quiz-level type only; generated questions always
	// carry one of the four concrete variants.
	TypeMixed Type = "mixed"
)

// Option is one selectable answer for option-based questions.
type Option struct {
	ID      string
	Text    string
	Correct bool
}

// Question is the closed set of question variants. Each variant carries
// its source idiom and a point value; scoring switches exhaustively on
// the concrete type.
type Question interface {
	ID() string
	Type() Type
	IdiomID() string
	Points() int

	// sealed prevents variants outside this package.
	sealed()
}

// MultipleChoice asks for the meaning of an idiom among distractors.
type MultipleChoice struct {
	QuestionID  string
	Idiom       idiom.Idiom
	Prompt      string
	Options     []Option
	Explanation string
	PointValue  int
}

func (q MultipleChoice) ID() string      { return q.QuestionID }
func (q MultipleChoice) Type() Type      { return TypeMultipleChoice }
func (q MultipleChoice) IdiomID() string { return q.Idiom.ID }
func (q MultipleChoice) Points() int     { return q.PointValue }
func (MultipleChoice) sealed()           {}

// FillBlank asks the learner to complete a sentence with missing words.
type FillBlank struct {
	QuestionID     string
	Idiom          idiom.Idiom
	Sentence       string
	CorrectAnswers []string
	Context        string
	Hint           string
	PointValue     int
}

func (q FillBlank) ID() string      { return q.QuestionID }
func (q FillBlank) Type() Type      { return TypeFillBlank }
func (q FillBlank) IdiomID() string { return q.Idiom.ID }
func (q FillBlank) Points() int     { return q.PointValue }
func (FillBlank) sealed()           {}

// MatchSituation asks which idiom fits a described situation.
type MatchSituation struct {
	QuestionID  string
	Idiom       idiom.Idiom
	Situation   string
	Options     []Option
	Explanation string
	PointValue  int
}

func (q MatchSituation) ID() string      { return q.QuestionID }
func (q MatchSituation) Type() Type      { return TypeMatchSituation }
func (q MatchSituation) IdiomID() string { return q.Idiom.ID }
func (q MatchSituation) Points() int     { return q.PointValue }
func (MatchSituation) sealed()           {}

// Audio plays an idiom's pronunciation and asks for its meaning. The
// audio file is opaque to the engine; playback belongs to the caller.
type Audio struct {
	QuestionID string
	Idiom      idiom.Idiom
	AudioFile  string
	Prompt     string
	Options    []Option
	AutoPlay   bool
	PointValue int
}

func (q Audio) ID() string      { return q.QuestionID }
func (q Audio) Type() Type      { return TypeAudio }
func (q Audio) IdiomID() string { return q.Idiom.ID }
func (q Audio) Points() int     { return q.PointValue }
func (Audio) sealed()           {}

// Answer records a learner's response to one question. Created once per
// question per session and never mutated.
type Answer struct {
	QuestionID   string    `json:"questionId"`
	Value        string    `json:"value"`
	Correct      bool      `json:"correct"`
	TimeSpent    float64   `json:"timeSpent"` // seconds
	PointsEarned int       `json:"pointsEarned"`
	AnsweredAt   time.Time `json:"answeredAt"`
}
