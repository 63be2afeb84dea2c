package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Quiz.PassingScore != 60 {
		t.Errorf("passingScore = %d, want 60", cfg.Quiz.PassingScore)
	}
	if len(cfg.Quiz.GradeBands) == 0 {
		t.Fatal("expected default grade bands")
	}
	if cfg.Quiz.GradeBands[0].Min != 97 || cfg.Quiz.GradeBands[0].Grade != "A+" {
		t.Errorf("top band = %+v, want {97 A+}", cfg.Quiz.GradeBands[0])
	}
	if cfg.Progression.XPPerLevelStep != 100 {
		t.Errorf("xpPerLevelStep = %d, want 100", cfg.Progression.XPPerLevelStep)
	}
	if cfg.Recommendations.AccuracyThreshold != 0.60 {
		t.Errorf("accuracyThreshold = %v, want 0.60", cfg.Recommendations.AccuracyThreshold)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.PassingScore != 60 {
		t.Errorf("passingScore = %d, want default 60", cfg.Quiz.PassingScore)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	raw := `
quiz:
  passingScore: 70
progression:
  dailyGoal: 3
recommendations:
  accuracyThreshold: 0.5
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.PassingScore != 70 {
		t.Errorf("passingScore = %d, want 70", cfg.Quiz.PassingScore)
	}
	if cfg.Progression.DailyGoal != 3 {
		t.Errorf("dailyGoal = %d, want 3", cfg.Progression.DailyGoal)
	}
	if cfg.Recommendations.AccuracyThreshold != 0.5 {
		t.Errorf("accuracyThreshold = %v, want 0.5", cfg.Recommendations.AccuracyThreshold)
	}
	// Unset fields keep their defaults.
	if cfg.Quiz.QuestionCount != 5 {
		t.Errorf("questionCount = %d, want default 5", cfg.Quiz.QuestionCount)
	}
	if cfg.Recommendations.TrendWindow != 10 {
		t.Errorf("trendWindow = %d, want default 10", cfg.Recommendations.TrendWindow)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"passing score out of range", "quiz:\n  passingScore: 150\n"},
		{"zero question count", "quiz:\n  questionCount: 0\n"},
		{"negative accuracy", "recommendations:\n  accuracyThreshold: -0.1\n"},
		{"malformed yaml", "quiz: [not\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "policy.yaml")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
