package achievements

import (
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func unlockIDs(list []Unlock) map[string]bool {
	ids := make(map[string]bool, len(list))
	for _, u := range list {
		ids[u.Achievement.ID] = true
	}
	return ids
}

func TestEvaluateThresholds(t *testing.T) {
	e := NewEvaluator(fixedClock())

	newly, _ := e.Evaluate(Input{IdiomsLearned: 25, Streak: 3, TotalXP: 1000}, DefaultCatalog())
	ids := unlockIDs(newly)

	for _, want := range []string{"first-steps", "word-collector", "warming-up", "rising-star"} {
		if !ids[want] {
			t.Errorf("expected %q to unlock, got %v", want, ids)
		}
	}
	for _, not := range []string{"idiom-scholar", "committed", "seasoned-learner", "sharpshooter"} {
		if ids[not] {
			t.Errorf("%q should stay locked", not)
		}
	}
}

func TestEvaluateConjunction(t *testing.T) {
	e := NewEvaluator(fixedClock())

	// well-rounded needs 50 idioms AND a 7-day streak.
	newly, _ := e.Evaluate(Input{IdiomsLearned: 50, Streak: 6}, DefaultCatalog())
	if unlockIDs(newly)["well-rounded"] {
		t.Fatal("well-rounded unlocked with only one requirement met")
	}

	newly, _ = e.Evaluate(Input{IdiomsLearned: 50, Streak: 7}, DefaultCatalog())
	if !unlockIDs(newly)["well-rounded"] {
		t.Fatal("well-rounded should unlock with both requirements met")
	}
}

func TestEvaluateActions(t *testing.T) {
	e := NewEvaluator(fixedClock())

	newly, _ := e.Evaluate(Input{Actions: map[string]bool{"perfect-score": true}}, DefaultCatalog())
	ids := unlockIDs(newly)
	if !ids["perfectionist"] {
		t.Error("perfect-score action should unlock perfectionist")
	}
	if ids["first-quiz"] || ids["night-owl"] {
		t.Errorf("unrelated action achievements unlocked: %v", ids)
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	e := NewEvaluator(fixedClock())
	in := Input{
		IdiomsLearned: 25,
		Unlocked: map[string]time.Time{
			"first-steps":    time.Now(),
			"word-collector": time.Now(),
		},
	}
	newly, partial := e.Evaluate(in, DefaultCatalog())
	if len(newly) != 0 {
		t.Fatalf("re-evaluating unlocked state produced %d unlocks", len(newly))
	}
	for _, p := range partial {
		if p.AchievementID == "first-steps" || p.AchievementID == "word-collector" {
			t.Errorf("unlocked achievement %q reported as partial", p.AchievementID)
		}
	}
}

func TestEvaluatePartialFractions(t *testing.T) {
	e := NewEvaluator(fixedClock())
	_, partial := e.Evaluate(Input{IdiomsLearned: 25, Streak: 14}, DefaultCatalog())

	fractions := make(map[string]float64, len(partial))
	for _, p := range partial {
		fractions[p.AchievementID] = p.Fraction
	}

	if got := fractions["idiom-scholar"]; got != 0.25 {
		t.Errorf("idiom-scholar fraction = %v, want 0.25", got)
	}
	// well-rounded averages 25/50 learned and a capped 14/7 streak.
	if got := fractions["well-rounded"]; got != 0.75 {
		t.Errorf("well-rounded fraction = %v, want 0.75", got)
	}
	if got := fractions["perfectionist"]; got != 0 {
		t.Errorf("perfectionist fraction = %v, want 0", got)
	}
}

func TestEvaluateEmptyRequirementNeverUnlocks(t *testing.T) {
	e := NewEvaluator(fixedClock())
	catalog := []Achievement{{ID: "broken", Name: "Broken"}}
	newly, partial := e.Evaluate(Input{IdiomsLearned: 999, TotalXP: 999999}, catalog)
	if len(newly) != 0 || len(partial) != 0 {
		t.Fatalf("empty requirement produced unlocks %v partial %v", newly, partial)
	}
}

func TestEvaluateStampsUnlockTime(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	e := NewEvaluator(func() time.Time { return at })
	newly, _ := e.Evaluate(Input{IdiomsLearned: 1}, DefaultCatalog())
	if len(newly) == 0 {
		t.Fatal("expected at least one unlock")
	}
	for _, u := range newly {
		if !u.UnlockedAt.Equal(at) {
			t.Errorf("%s unlockedAt = %v, want %v", u.Achievement.ID, u.UnlockedAt, at)
		}
	}
}
