package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/idiomaster/internal/idiom"
)

func mcQuestion() MultipleChoice {
	return MultipleChoice{
		QuestionID: "q1",
		Idiom:      idiom.Idiom{ID: "break-the-ice"},
		Prompt:     `What does "break the ice" mean?`,
		Options: []Option{
			{ID: "q1-o0", Text: "to start a conversation", Correct: true},
			{ID: "q1-o1", Text: "to freeze"},
			{ID: "q1-o2", Text: "to give up"},
			{ID: "q1-o3", Text: "to celebrate"},
		},
		PointValue: 10,
	}
}

func TestScoreMultipleChoice(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCorrect bool
		wantPoints  int
	}{
		{"correct option", "q1-o0", true, 10},
		{"wrong option", "q1-o2", false, 0},
		{"unknown option id", "q1-o9", false, 0},
		{"empty answer", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreAnswer(mcQuestion(), tt.raw)
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
			if got.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", got.Points, tt.wantPoints)
			}
		})
	}
}

func TestScoreFillBlankNormalization(t *testing.T) {
	q := FillBlank{
		QuestionID:     "q1",
		Idiom:          idiom.Idiom{ID: "spill-the-beans"},
		Sentence:       "Do not ____ before the party.",
		CorrectAnswers: []string{"spill the beans"},
		PointValue:     10,
	}

	tests := []struct {
		name        string
		raw         string
		wantCorrect bool
	}{
		{"exact", "spill the beans", true},
		{"mixed case", "Spill The Beans", true},
		{"extra whitespace", "  spill   the beans ", true},
		{"wrong text", "let the cat out", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreAnswer(q, tt.raw)
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			if got.Correct != tt.wantCorrect {
				t.Errorf("correct = %v, want %v", got.Correct, tt.wantCorrect)
			}
		})
	}
}

func TestScoreMalformedQuestions(t *testing.T) {
	noOptions := mcQuestion()
	noOptions.Options = nil

	noCorrect := mcQuestion()
	for i := range noCorrect.Options {
		noCorrect.Options[i].Correct = false
	}

	noAnswers := FillBlank{QuestionID: "q2", PointValue: 10}

	for _, q := range []Question{noOptions, noCorrect, noAnswers} {
		var invalidErr *InvalidQuestionError
		if _, err := ScoreAnswer(q, "anything"); !errors.As(err, &invalidErr) {
			t.Errorf("Score(%T) err = %v, want InvalidQuestionError", q, err)
		}
	}
}

func TestGradeFor(t *testing.T) {
	bands := DefaultGradeBands()
	tests := []struct {
		percentage int
		want       Grade
	}{
		{100, GradeAPlus},
		{97, GradeAPlus},
		{96, GradeA},
		{93, GradeA},
		{89, GradeBPlus},
		{83, GradeB},
		{77, GradeCPlus},
		{70, GradeC},
		{60, GradeD},
		{59, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		if got := GradeFor(tt.percentage, bands); got != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.percentage, got, tt.want)
		}
	}
}

func TestComputeScoreRounding(t *testing.T) {
	questions := []Question{
		mcQuestion(),
		MultipleChoice{QuestionID: "q2", Options: mcQuestion().Options, PointValue: 10},
		MultipleChoice{QuestionID: "q3", Options: mcQuestion().Options, PointValue: 10},
	}
	answers := []Answer{
		{QuestionID: "q1", Correct: true, PointsEarned: 10},
		{QuestionID: "q2", Correct: true, PointsEarned: 10},
		{QuestionID: "q3"},
	}

	s := ComputeScore(questions, answers, 60, DefaultGradeBands())
	if s.Percentage != 67 { // round(66.67)
		t.Errorf("percentage = %d, want 67", s.Percentage)
	}
	if !s.Passed {
		t.Error("expected 67% to pass at threshold 60")
	}
	if s.Points != 20 || s.MaxPoints != 30 {
		t.Errorf("points = %d/%d, want 20/30", s.Points, s.MaxPoints)
	}
}
