// Package config loads the optional policy file that tunes scoring,
// progression and recommendation behavior. Every field has a default,
// so the engine runs without any file present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GradeBand maps a minimum percentage to a letter grade.
type GradeBand struct {
	Min   int    `yaml:"min"`
	Grade string `yaml:"grade"`
}

// LevelTitle names the level band starting at Level.
type LevelTitle struct {
	Level int    `yaml:"level"`
	Title string `yaml:"title"`
}

// Config is the on-disk policy. Values are primitives; the engine maps
// them onto the quiz, progression and stats configs at startup.
type Config struct {
	Quiz struct {
		PassingScore  int         `yaml:"passingScore"`
		QuestionCount int         `yaml:"questionCount"`
		GradeBands    []GradeBand `yaml:"gradeBands"`
	} `yaml:"quiz"`

	Progression struct {
		// XPPerLevelStep controls the level curve: reaching level n+1
		// from level n costs n*step XP.
		XPPerLevelStep int          `yaml:"xpPerLevelStep"`
		MaxLevel       int          `yaml:"maxLevel"`
		DailyGoal      int          `yaml:"dailyGoal"`
		LevelTitles    []LevelTitle `yaml:"levelTitles"`
	} `yaml:"progression"`

	Recommendations struct {
		AccuracyThreshold  float64 `yaml:"accuracyThreshold"`
		ReviewWindow       int     `yaml:"reviewWindow"`
		DifficultyStreak   int     `yaml:"difficultyStreak"`
		DifficultyAccuracy float64 `yaml:"difficultyAccuracy"`
		TrendWindow        int     `yaml:"trendWindow"`
	} `yaml:"recommendations"`

	Store struct {
		SnapshotsToKeep int `yaml:"snapshotsToKeep"`
	} `yaml:"store"`
}

// Default returns the built-in policy.
func Default() Config {
	var cfg Config
	cfg.Quiz.PassingScore = 60
	cfg.Quiz.QuestionCount = 5
	cfg.Quiz.GradeBands = []GradeBand{
		{Min: 97, Grade: "A+"},
		{Min: 93, Grade: "A"},
		{Min: 89, Grade: "B+"},
		{Min: 83, Grade: "B"},
		{Min: 77, Grade: "C+"},
		{Min: 70, Grade: "C"},
		{Min: 60, Grade: "D"},
	}
	cfg.Progression.XPPerLevelStep = 100
	cfg.Progression.MaxLevel = 60
	cfg.Progression.DailyGoal = 1
	cfg.Recommendations.AccuracyThreshold = 0.60
	cfg.Recommendations.ReviewWindow = 5
	cfg.Recommendations.DifficultyStreak = 3
	cfg.Recommendations.DifficultyAccuracy = 0.85
	cfg.Recommendations.TrendWindow = 10
	cfg.Store.SnapshotsToKeep = 5
	return cfg
}

// Load reads YAML policy from path, layering it over the defaults.
// A missing file is not an error; it just yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Quiz.PassingScore < 0 || c.Quiz.PassingScore > 100 {
		return fmt.Errorf("quiz.passingScore %d out of range [0,100]", c.Quiz.PassingScore)
	}
	if c.Quiz.QuestionCount < 1 {
		return fmt.Errorf("quiz.questionCount must be positive, got %d", c.Quiz.QuestionCount)
	}
	if len(c.Quiz.GradeBands) == 0 {
		return fmt.Errorf("quiz.gradeBands must not be empty")
	}
	if c.Progression.XPPerLevelStep < 1 {
		return fmt.Errorf("progression.xpPerLevelStep must be positive, got %d", c.Progression.XPPerLevelStep)
	}
	if c.Progression.MaxLevel < 2 {
		return fmt.Errorf("progression.maxLevel must be at least 2, got %d", c.Progression.MaxLevel)
	}
	if c.Recommendations.AccuracyThreshold < 0 || c.Recommendations.AccuracyThreshold > 1 {
		return fmt.Errorf("recommendations.accuracyThreshold %v out of range [0,1]", c.Recommendations.AccuracyThreshold)
	}
	return nil
}
