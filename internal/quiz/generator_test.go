package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/idiomaster/internal/idiom"
)

func TestGeneratorCountAndCap(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)

	qs, err := gen.Generate(Config{Type: TypeMultipleChoice, QuestionCount: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 5 {
		t.Errorf("questions = %d, want 5", len(qs))
	}

	// Requesting more questions than idioms caps at the pool size.
	qs, err = gen.Generate(Config{Type: TypeMultipleChoice, QuestionCount: 1000})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	pool := len(idiom.BuiltinCatalog().All())
	if len(qs) != pool {
		t.Errorf("questions = %d, want pool size %d", len(qs), pool)
	}
}

func TestGeneratorNoMatches(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)
	_, err := gen.Generate(Config{
		Type:       TypeMultipleChoice,
		Difficulty: idiom.DifficultyBeginner,
		Categories: []idiom.Category{"no-such-category"},
	})
	if !errors.Is(err, ErrNoIdioms) {
		t.Errorf("generate = %v, want ErrNoIdioms", err)
	}
}

func TestGeneratorDifficultyFilter(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)
	qs, err := gen.Generate(Config{
		Type:          TypeMultipleChoice,
		Difficulty:    idiom.DifficultyAdvanced,
		QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	catalog := idiom.BuiltinCatalog()
	for _, q := range qs {
		i, err := catalog.Get(q.IdiomID())
		if err != nil {
			t.Fatalf("lookup %s: %v", q.IdiomID(), err)
		}
		if i.Difficulty != idiom.DifficultyAdvanced {
			t.Errorf("question idiom %s has difficulty %s", i.ID, i.Difficulty)
		}
		if q.Points() != 20 {
			t.Errorf("advanced question points = %d, want 20", q.Points())
		}
	}
}

func TestGeneratorMixedRotation(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)
	qs, err := gen.Generate(Config{Type: TypeMixed, QuestionCount: 8})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []Type{TypeMultipleChoice, TypeFillBlank, TypeMatchSituation, TypeAudio}
	for i, q := range qs {
		expected := want[i%len(want)]
		got := q.Type()
		// Audio questions fall back to multiple-choice when the idiom
		// carries no audio file.
		if expected == TypeAudio && got == TypeMultipleChoice {
			continue
		}
		if got != expected {
			t.Errorf("question %d type = %s, want %s", i, got, expected)
		}
	}
}

func TestGeneratorOptionShape(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)
	qs, err := gen.Generate(Config{Type: TypeMultipleChoice, QuestionCount: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, q := range qs {
		mc, ok := q.(MultipleChoice)
		if !ok {
			t.Fatalf("question is %T, want MultipleChoice", q)
		}
		if len(mc.Options) != 4 {
			t.Errorf("options = %d, want 4", len(mc.Options))
		}
		correct := 0
		seen := make(map[string]bool)
		for _, o := range mc.Options {
			if o.Correct {
				correct++
			}
			if seen[o.Text] {
				t.Errorf("question %s repeats option %q", mc.QuestionID, o.Text)
			}
			seen[o.Text] = true
		}
		if correct != 1 {
			t.Errorf("question %s has %d correct options, want 1", mc.QuestionID, correct)
		}
	}
}

func TestGeneratorFillBlankRemovesIdiom(t *testing.T) {
	gen := NewGenerator(idiom.BuiltinCatalog(), nil)
	qs, err := gen.Generate(Config{Type: TypeFillBlank, QuestionCount: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	catalog := idiom.BuiltinCatalog()

	for _, q := range qs {
		fb, ok := q.(FillBlank)
		if !ok {
			t.Fatalf("question is %T, want FillBlank", q)
		}
		if !strings.Contains(fb.Sentence, "____") {
			t.Errorf("sentence %q has no blank", fb.Sentence)
		}
		i, _ := catalog.Get(fb.IdiomID())
		if strings.Contains(strings.ToLower(fb.Sentence), strings.ToLower(i.Text)) {
			t.Errorf("sentence %q still contains the idiom", fb.Sentence)
		}
		if len(fb.CorrectAnswers) == 0 {
			t.Error("fill-blank has no accepted answers")
		}
		// The generated question must accept its own answer.
		res, err := ScoreAnswer(fb, fb.CorrectAnswers[0])
		if err != nil || !res.Correct {
			t.Errorf("own answer rejected: %v %v", res, err)
		}
	}
}

func TestGeneratorShuffleInjection(t *testing.T) {
	reverse := func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}

	plain := NewGenerator(idiom.BuiltinCatalog(), nil)
	shuffled := NewGenerator(idiom.BuiltinCatalog(), reverse)

	a, err := plain.Generate(Config{Type: TypeMultipleChoice, QuestionCount: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := shuffled.Generate(Config{Type: TypeMultipleChoice, QuestionCount: 3, ShuffleQuestions: true})
	if err != nil {
		t.Fatal(err)
	}
	if a[0].IdiomID() == b[0].IdiomID() {
		t.Error("expected the injected shuffle to reorder questions")
	}
}
