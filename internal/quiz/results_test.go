package quiz

import (
	"testing"

	"github.com/abhisek/idiomaster/internal/idiom"
)

func TestComputeTimeStats(t *testing.T) {
	answers := []Answer{
		{QuestionID: "q1", TimeSpent: 4},
		{QuestionID: "q2", TimeSpent: 10},
		{QuestionID: "q3", TimeSpent: 7},
	}
	ts := ComputeTimeStats(answers)
	if ts.TotalTime != 21 || ts.AveragePerQuestion != 7 {
		t.Errorf("total = %v avg = %v, want 21 7", ts.TotalTime, ts.AveragePerQuestion)
	}
	if ts.FastestQuestion != 4 || ts.SlowestQuestion != 10 {
		t.Errorf("fastest = %v slowest = %v, want 4 10", ts.FastestQuestion, ts.SlowestQuestion)
	}

	empty := ComputeTimeStats(nil)
	if empty != (TimeStats{}) {
		t.Errorf("empty answers produced %+v", empty)
	}
}

func breakdownQuestions() []Question {
	mk := func(id string, diff idiom.Difficulty, cats ...idiom.Category) MultipleChoice {
		return MultipleChoice{
			QuestionID: id,
			Idiom:      idiom.Idiom{ID: id + "-idiom", Categories: cats, Difficulty: diff},
			Options:    []Option{{ID: id + "-o0", Correct: true}, {ID: id + "-o1"}},
			PointValue: 10,
		}
	}
	return []Question{
		mk("q1", idiom.DifficultyBeginner, idiom.CategoryAnimals),
		mk("q2", idiom.DifficultyBeginner, idiom.CategoryAnimals, idiom.CategoryWeather),
		mk("q3", idiom.DifficultyAdvanced, idiom.CategoryFood),
	}
}

func TestBreakdownByCategory(t *testing.T) {
	questions := breakdownQuestions()
	answers := []Answer{
		{QuestionID: "q1", Correct: true},
		{QuestionID: "q2", Correct: false},
		{QuestionID: "q3", Correct: true},
	}

	got := BreakdownByCategory(questions, answers)
	want := []CategoryPerformance{
		{Category: idiom.CategoryAnimals, Correct: 1, Total: 2, Percentage: 50},
		{Category: idiom.CategoryWeather, Correct: 0, Total: 1, Percentage: 0},
		{Category: idiom.CategoryFood, Correct: 1, Total: 1, Percentage: 100},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBreakdownByDifficulty(t *testing.T) {
	questions := breakdownQuestions()
	answers := []Answer{
		{QuestionID: "q1", Correct: true},
		{QuestionID: "q2", Correct: true},
		{QuestionID: "q3", Correct: false},
	}

	got := BreakdownByDifficulty(questions, answers)
	want := []DifficultyPerformance{
		{Difficulty: idiom.DifficultyBeginner, Correct: 2, Total: 2, Percentage: 100},
		{Difficulty: idiom.DifficultyAdvanced, Correct: 0, Total: 1, Percentage: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d difficulties, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("difficulty %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
