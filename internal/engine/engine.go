// Package engine wires the quiz, progression, achievement and stats
// services behind one facade. It owns the session registry, runs the
// completion pipeline exactly once per session, and persists user state
// through the event store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/idiomaster/internal/achievements"
	"github.com/abhisek/idiomaster/internal/config"
	"github.com/abhisek/idiomaster/internal/idiom"
	"github.com/abhisek/idiomaster/internal/progression"
	"github.com/abhisek/idiomaster/internal/quiz"
	"github.com/abhisek/idiomaster/internal/stats"
	"github.com/abhisek/idiomaster/internal/store"
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// Options configures an Engine. Zero-value fields fall back to the
// built-in catalog, policy and clocks.
type Options struct {
	Config  config.Config
	Idioms  idiom.Repository
	Catalog []achievements.Achievement

	Snapshots store.SnapshotRepo
	Events    store.EventRepo

	Now     func() time.Time
	Shuffle quiz.ShuffleFunc
	NewID   func() string
}

// Engine is the facade over the whole quiz engine. Safe for concurrent
// use; per-user writes serialize through the progression ledger.
type Engine struct {
	cfg    config.Config
	idioms idiom.Repository
	gen    *quiz.Generator
	ledger *progression.Ledger
	eval   *achievements.Evaluator

	catalog []achievements.Achievement
	bands   []quiz.GradeBand
	curve   progression.Curve

	snapshots store.SnapshotRepo
	events    store.EventRepo

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	users    map[string]*userState
	sessions map[string]*handle
}

// userState is the in-memory working copy of one user's aggregate plus
// their rolling statistics.
type userState struct {
	progress *progression.UserProgress
	agg      *stats.Aggregator
}

// handle tracks one live session and its completion state.
type handle struct {
	userID string
	sess   *quiz.Session

	mu        sync.Mutex
	finalized bool
	results   *quiz.Results
	finalErr  error
}

// New creates an Engine from opts.
func New(opts Options) *Engine {
	if opts.Idioms == nil {
		opts.Idioms = idiom.BuiltinCatalog()
	}
	if opts.Catalog == nil {
		opts.Catalog = achievements.DefaultCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	curve := curveFrom(opts.Config)
	return &Engine{
		cfg:       opts.Config,
		idioms:    opts.Idioms,
		gen:       quiz.NewGenerator(opts.Idioms, opts.Shuffle),
		ledger:    progression.NewLedger(curve, opts.Now, opts.Config.Progression.DailyGoal),
		eval:      achievements.NewEvaluator(opts.Now),
		catalog:   opts.Catalog,
		bands:     bandsFrom(opts.Config),
		curve:     curve,
		snapshots: opts.Snapshots,
		events:    opts.Events,
		now:       opts.Now,
		newID:     opts.NewID,
		users:     make(map[string]*userState),
		sessions:  make(map[string]*handle),
	}
}

// curveFrom builds the level curve from policy: reaching level n+1 from
// level n costs n*step XP.
func curveFrom(cfg config.Config) progression.Curve {
	step := cfg.Progression.XPPerLevelStep
	maxLevel := cfg.Progression.MaxLevel
	if step < 1 || maxLevel < 2 {
		return progression.DefaultCurve()
	}

	thresholds := make([]int, 0, maxLevel-1)
	cum := 0
	for n := 1; n < maxLevel; n++ {
		cum += step * n
		thresholds = append(thresholds, cum)
	}

	titles := progression.DefaultCurve().Titles
	if len(cfg.Progression.LevelTitles) > 0 {
		titles = titles[:0:0]
		for _, lt := range cfg.Progression.LevelTitles {
			titles = append(titles, progression.LevelTitle{Level: lt.Level, Title: lt.Title})
		}
	}
	return progression.Curve{Thresholds: thresholds, Titles: titles}
}

// bandsFrom maps the policy grade table onto the scoring bands.
func bandsFrom(cfg config.Config) []quiz.GradeBand {
	if len(cfg.Quiz.GradeBands) == 0 {
		return quiz.DefaultGradeBands()
	}
	bands := make([]quiz.GradeBand, 0, len(cfg.Quiz.GradeBands))
	for _, b := range cfg.Quiz.GradeBands {
		bands = append(bands, quiz.GradeBand{Min: b.Min, Grade: quiz.Grade(b.Grade)})
	}
	return bands
}

// statsConfigFrom maps the policy recommendation tunables onto the
// aggregator config.
func statsConfigFrom(cfg config.Config) stats.Config {
	sc := stats.DefaultConfig()
	r := cfg.Recommendations
	if r.AccuracyThreshold > 0 {
		sc.AccuracyThreshold = r.AccuracyThreshold
	}
	if r.ReviewWindow > 0 {
		sc.ReviewWindow = r.ReviewWindow
	}
	if r.DifficultyStreak > 0 {
		sc.DifficultyStreak = r.DifficultyStreak
	}
	if r.DifficultyAccuracy > 0 {
		sc.DifficultyAccuracy = r.DifficultyAccuracy
	}
	if r.TrendWindow > 0 {
		sc.TrendWindow = r.TrendWindow
	}
	return sc
}

// loadUser returns the user's working state, restoring it from the
// latest snapshot on first access.
func (e *Engine) loadUser(ctx context.Context, userID string) (*userState, error) {
	e.mu.Lock()
	if u, ok := e.users[userID]; ok {
		e.mu.Unlock()
		return u, nil
	}
	e.mu.Unlock()

	u := &userState{agg: stats.New(statsConfigFrom(e.cfg))}
	if e.snapshots != nil {
		snap, err := e.snapshots.Latest(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			u.progress = snap.Data.Progress
			if snap.Data.Stats != nil {
				u.agg.Restore(snap.Data.Stats)
			}
		}
	}
	if u.progress == nil {
		u.progress = progression.New(userID, e.now(), e.curve)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if existing, ok := e.users[userID]; ok {
		return existing, nil
	}
	e.users[userID] = u
	return u, nil
}

// saveUser snapshots the user's current state and prunes old snapshots.
func (e *Engine) saveUser(ctx context.Context, u *userState) error {
	if e.snapshots == nil {
		return nil
	}
	err := e.snapshots.Save(ctx, &store.Snapshot{
		UserID:    u.progress.UserID,
		Sequence:  u.progress.Version,
		Timestamp: e.now(),
		Data: store.SnapshotData{
			Version:  1,
			Progress: u.progress,
			Stats:    u.agg.Snapshot(),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	keep := e.cfg.Store.SnapshotsToKeep
	if keep > 0 {
		if err := e.snapshots.Prune(ctx, u.progress.UserID, keep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}
	return nil
}

// Progress returns a copy of the user's aggregate.
func (e *Engine) Progress(ctx context.Context, userID string) (*progression.UserProgress, error) {
	u, err := e.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return u.progress.Clone(), nil
}

// LevelTitle returns the display title for the user's current level.
func (e *Engine) LevelTitle(level int) string {
	return e.curve.TitleFor(level)
}

// ToggleBookmark flips an idiom's bookmark and persists the change.
// Returns the new bookmark state.
func (e *Engine) ToggleBookmark(ctx context.Context, userID, idiomID string) (bool, error) {
	if _, err := e.idioms.Get(idiomID); err != nil {
		return false, err
	}
	u, err := e.loadUser(ctx, userID)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	updated, marked, err := e.ledger.ToggleBookmark(u.progress, idiomID)
	if err != nil {
		return false, err
	}
	u.progress = updated
	if err := e.saveUser(ctx, u); err != nil {
		return marked, err
	}
	return marked, nil
}
