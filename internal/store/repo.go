package store

import (
	"context"
	"time"

	"github.com/abhisek/idiomaster/internal/progression"
	"github.com/abhisek/idiomaster/internal/stats"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures one user's full state at a point in time: the
// progression aggregate plus the statistics aggregator's rolling state.
type SnapshotData struct {
	Version  int                       `json:"version"`
	Progress *progression.UserProgress `json:"progress,omitempty"`
	Stats    *stats.State              `json:"stats,omitempty"`
}

// Snapshot represents a point-in-time capture of user state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages user state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none
	// exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the user's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	UserID       string
	Action       string // start, complete, or abandon
	QuizType     string
	Questions    int
	Correct      int
	DurationSecs int
	TimedOut     bool
}

// QuizResultEventData captures the final score of a completed quiz.
type QuizResultEventData struct {
	SessionID    string
	UserID       string
	QuizType     string
	Difficulty   string
	Correct      int
	Total        int
	Percentage   int
	Points       int
	Grade        string
	Passed       bool
	XPEarned     int
	DurationSecs int
}

// QuizResultRecord is a queried quiz result event.
type QuizResultRecord struct {
	QuizResultEventData
	Sequence  int64
	Timestamp time.Time
}

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	AchievementID string
	UserID        string
	Name          string
	Rarity        string
	XPReward      int
	SessionID     *string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error
	AppendAchievement(ctx context.Context, data AchievementEventData) error

	// QueryQuizResults returns a user's quiz result events, newest
	// first.
	QueryQuizResults(ctx context.Context, userID string, opts QueryOpts) ([]QuizResultRecord, error)

	// AchievementCounts returns a user's unlock counts by rarity and
	// the total.
	AchievementCounts(ctx context.Context, userID string) (map[string]int, int, error)
}
