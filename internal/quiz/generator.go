package quiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/idiomaster/internal/idiom"
)

// ErrNoIdioms is returned when no catalog idiom matches the quiz config.
var ErrNoIdioms = errors.New("no idioms match quiz config")

// ShuffleFunc randomizes order in place via swap, rand.Shuffle style.
// Injected so generation stays deterministic under test.
type ShuffleFunc func(n int, swap func(i, j int))

// optionsPerQuestion is the option count for option-based variants
// (one correct plus distractors).
const optionsPerQuestion = 4

// defaultPoints maps idiom difficulty to a question's point value.
var defaultPoints = map[idiom.Difficulty]int{
	idiom.DifficultyBeginner:     10,
	idiom.DifficultyIntermediate: 15,
	idiom.DifficultyAdvanced:     20,
}

// Generator builds a session's question list from the idiom catalog.
type Generator struct {
	repo    idiom.Repository
	shuffle ShuffleFunc
	newID   func() string
}

// NewGenerator creates a generator. shuffle may be nil for a generator
// that preserves catalog order regardless of config flags.
func NewGenerator(repo idiom.Repository, shuffle ShuffleFunc) *Generator {
	return &Generator{
		repo:    repo,
		shuffle: shuffle,
		newID:   func() string { return uuid.NewString() },
	}
}

// Generate produces the ordered, immutable question list for one
// session. Mixed quizzes rotate through the four concrete variants.
func (g *Generator) Generate(cfg Config) ([]Question, error) {
	filter := idiom.Filter{Categories: cfg.Categories}
	if cfg.Difficulty != "" {
		filter.Difficulties = []idiom.Difficulty{cfg.Difficulty}
	}
	pool := g.repo.Filter(filter)
	if len(pool) == 0 {
		return nil, ErrNoIdioms
	}

	if cfg.ShuffleQuestions && g.shuffle != nil {
		g.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	count := cfg.EffectiveQuestionCount()
	if count > len(pool) {
		count = len(pool)
	}

	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		q, err := g.build(questionType(cfg.Type, i), pool[i], pool, cfg.ShuffleOptions)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// questionType resolves the variant for the i-th question of a quiz.
func questionType(t Type, i int) Type {
	if t != TypeMixed && t != "" {
		return t
	}
	rotation := []Type{TypeMultipleChoice, TypeFillBlank, TypeMatchSituation, TypeAudio}
	return rotation[i%len(rotation)]
}

func (g *Generator) build(t Type, target idiom.Idiom, pool []idiom.Idiom, shuffleOptions bool) (Question, error) {
	points := defaultPoints[target.Difficulty]
	if points == 0 {
		points = defaultPoints[idiom.DifficultyBeginner]
	}

	// Audio needs a pronunciation file; fall back to multiple choice.
	if t == TypeAudio && target.AudioFile == "" {
		t = TypeMultipleChoice
	}

	switch t {
	case TypeMultipleChoice:
		id := g.newID()
		return MultipleChoice{
			QuestionID:  id,
			Idiom:       target,
			Prompt:      fmt.Sprintf("What does %q mean?", target.Text),
			Options:     g.meaningOptions(id, target, pool, shuffleOptions),
			Explanation: explanationFor(target),
			PointValue:  points,
		}, nil

	case TypeFillBlank:
		id := g.newID()
		sentence, answers, hint := blankOut(target)
		return FillBlank{
			QuestionID:     id,
			Idiom:          target,
			Sentence:       sentence,
			CorrectAnswers: answers,
			Context:        exampleContext(target),
			Hint:           hint,
			PointValue:     points,
		}, nil

	case TypeMatchSituation:
		id := g.newID()
		return MatchSituation{
			QuestionID:  id,
			Idiom:       target,
			Situation:   situationFor(target),
			Options:     g.idiomOptions(id, target, pool, shuffleOptions),
			Explanation: explanationFor(target),
			PointValue:  points,
		}, nil

	case TypeAudio:
		id := g.newID()
		return Audio{
			QuestionID: id,
			Idiom:      target,
			AudioFile:  target.AudioFile,
			Prompt:     "What does the idiom you hear mean?",
			Options:    g.meaningOptions(id, target, pool, shuffleOptions),
			AutoPlay:   true,
			PointValue: points,
		}, nil

	default:
		return nil, &InvalidQuestionError{QuestionID: string(t), Reason: "unsupported question type"}
	}
}

// meaningOptions builds one correct meaning plus distractor meanings,
// preferring idioms sharing a category with the target.
func (g *Generator) meaningOptions(qid string, target idiom.Idiom, pool []idiom.Idiom, shuffleOptions bool) []Option {
	texts := []string{target.Meaning}
	for _, d := range distractors(target, pool, optionsPerQuestion-1) {
		texts = append(texts, d.Meaning)
	}
	return g.finalizeOptions(qid, texts, shuffleOptions)
}

// idiomOptions builds one correct idiom text plus distractor idioms.
func (g *Generator) idiomOptions(qid string, target idiom.Idiom, pool []idiom.Idiom, shuffleOptions bool) []Option {
	texts := []string{target.Text}
	for _, d := range distractors(target, pool, optionsPerQuestion-1) {
		texts = append(texts, d.Text)
	}
	return g.finalizeOptions(qid, texts, shuffleOptions)
}

// finalizeOptions assigns option ids (first entry is the correct one)
// and applies the option shuffle flag.
func (g *Generator) finalizeOptions(qid string, texts []string, shuffleOptions bool) []Option {
	options := make([]Option, len(texts))
	for i, text := range texts {
		options[i] = Option{
			ID:      fmt.Sprintf("%s-o%d", qid, i+1),
			Text:    text,
			Correct: i == 0,
		}
	}
	if shuffleOptions && g.shuffle != nil {
		g.shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	}
	return options
}

// distractors picks up to n other idioms, same-category first.
func distractors(target idiom.Idiom, pool []idiom.Idiom, n int) []idiom.Idiom {
	var same, other []idiom.Idiom
	for _, cand := range pool {
		if cand.ID == target.ID {
			continue
		}
		shared := false
		for _, c := range target.Categories {
			if cand.InCategory(c) {
				shared = true
				break
			}
		}
		if shared {
			same = append(same, cand)
		} else {
			other = append(other, cand)
		}
	}
	picked := same
	if len(picked) < n {
		picked = append(picked, other...)
	}
	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}

// blankOut produces a fill-blank sentence for an idiom. The preferred
// form blanks the whole idiom inside one of its example sentences; when
// no example contains the idiom verbatim, the last word of the idiom
// itself is blanked instead.
func blankOut(i idiom.Idiom) (sentence string, answers []string, hint string) {
	lowIdiom := strings.ToLower(i.Text)
	for _, ex := range i.Examples {
		idx := strings.Index(strings.ToLower(ex.Sentence), lowIdiom)
		if idx < 0 {
			continue
		}
		blanked := ex.Sentence[:idx] + "____" + ex.Sentence[idx+len(i.Text):]
		return blanked, []string{i.Text}, i.Meaning
	}

	words := strings.Fields(i.Text)
	last := words[len(words)-1]
	stem := strings.Join(words[:len(words)-1], " ")
	return fmt.Sprintf("Complete the idiom: %s ____", stem), []string{last}, i.Meaning
}

// situationFor picks the situation text for a match-situation question.
func situationFor(i idiom.Idiom) string {
	for _, ex := range i.Examples {
		if ex.Context != "" {
			return fmt.Sprintf("Which idiom fits this situation: %s?", ex.Context)
		}
	}
	return fmt.Sprintf("Which idiom means %q?", i.Meaning)
}

func exampleContext(i idiom.Idiom) string {
	if len(i.Examples) > 0 {
		return i.Examples[0].Context
	}
	return ""
}

func explanationFor(i idiom.Idiom) string {
	return fmt.Sprintf("%q means %s.", i.Text, i.Meaning)
}
