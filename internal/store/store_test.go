package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/idiomaster/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "lea")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	prog := progression.New("lea", now, progression.DefaultCurve())
	prog.XP = 250

	err = repo.Save(ctx, &Snapshot{
		UserID:    "lea",
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Progress: prog},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "lea")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.XP != 250 {
		t.Errorf("progress did not round-trip: %+v", snap.Data.Progress)
	}

	// A different user has no snapshot.
	other, err := repo.Latest(ctx, "marco")
	if err != nil {
		t.Fatalf("latest (other user): %v", err)
	}
	if other != nil {
		t.Fatal("expected nil snapshot for other user")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "lea",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "lea")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "lea",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// Another user's snapshot must survive the prune.
	err := repo.Save(ctx, &Snapshot{
		UserID:    "marco",
		Sequence:  100,
		Timestamp: base,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save other user: %v", err)
	}

	if err := repo.Prune(ctx, "lea", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Errorf("remaining snapshots = %d, want 6 (5 kept + 1 other user)", count)
	}

	snap, err := repo.Latest(ctx, "lea")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "lea",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "lea", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryQuizResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []QuizResultEventData{
		{SessionID: "s1", UserID: "lea", QuizType: "multiple-choice", Difficulty: "beginner", Correct: 3, Total: 5, Percentage: 60, Points: 30, Grade: "D", Passed: true, XPEarned: 30, DurationSecs: 90},
		{SessionID: "s2", UserID: "lea", QuizType: "fill-blank", Difficulty: "beginner", Correct: 5, Total: 5, Percentage: 100, Points: 50, Grade: "A+", Passed: true, XPEarned: 75, DurationSecs: 80},
		{SessionID: "s3", UserID: "marco", QuizType: "mixed", Difficulty: "advanced", Correct: 1, Total: 5, Percentage: 20, Points: 20, Grade: "F", Passed: false, XPEarned: 20, DurationSecs: 200},
	}
	for i, r := range results {
		if err := repo.AppendQuizResult(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryQuizResults(ctx, "lea", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].SessionID != "s2" || records[1].SessionID != "s1" {
		t.Errorf("order = %s, %s; want s2, s1", records[0].SessionID, records[1].SessionID)
	}
	if records[0].Grade != "A+" || records[0].Percentage != 100 {
		t.Errorf("record fields did not round-trip: %+v", records[0])
	}

	limited, err := repo.QueryQuizResults(ctx, "lea", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("limited query = %+v, want single s2", limited)
	}
}

func TestAppendSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", UserID: "lea", Action: "start", QuizType: "mixed"},
		{SessionID: "s1", UserID: "lea", Action: "complete", QuizType: "mixed", Questions: 5, Correct: 4, DurationSecs: 120},
	}
	for i, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("session events = %d, want 2", count)
	}
}

func TestAchievementCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sid := "s1"
	unlocks := []AchievementEventData{
		{AchievementID: "first-steps", UserID: "lea", Name: "First Steps", Rarity: "common", XPReward: 10, SessionID: &sid},
		{AchievementID: "first-quiz", UserID: "lea", Name: "Quiz Rookie", Rarity: "common", XPReward: 15, SessionID: &sid},
		{AchievementID: "unstoppable", UserID: "lea", Name: "Unstoppable", Rarity: "legendary", XPReward: 200},
		{AchievementID: "first-steps", UserID: "marco", Name: "First Steps", Rarity: "common", XPReward: 10},
	}
	for i, u := range unlocks {
		if err := repo.AppendAchievement(ctx, u); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byRarity, total, err := repo.AchievementCounts(ctx, "lea")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if byRarity["common"] != 2 || byRarity["legendary"] != 1 {
		t.Errorf("byRarity = %v, want common:2 legendary:1", byRarity)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", UserID: "lea", Action: "start"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendQuizResult(ctx, QuizResultEventData{SessionID: "s1", UserID: "lea", QuizType: "mixed", Correct: 5, Total: 5, Percentage: 100, Grade: "A+", Passed: true}); err != nil {
		t.Fatalf("append quiz result: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	qr, err := s.Client().QuizResultEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query quiz result event: %v", err)
	}
	if qr.Sequence <= se.Sequence {
		t.Errorf("quiz result sequence %d not after session event sequence %d", qr.Sequence, se.Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "session_events", "quiz_result_events", "achievement_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
