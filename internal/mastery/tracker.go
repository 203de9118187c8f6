// Package mastery implements the fixed-ladder spaced repetition scheme used
// to schedule flashcards.
//
// Each card climbs or falls one rung per answer. The rung alone decides when
// the card is due again; no answer history beyond aggregate counters is kept.
package mastery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/prepdeck/pkg/models"
)

// Store persists the whole progress map.
// Load must not fail: unreadable state is reported as an empty map.
// LoadForUpdate reports backend failures so that writers never replace
// progress they could not read.
type Store interface {
	Load(ctx context.Context) models.ProgressMap
	LoadForUpdate(ctx context.Context) (models.ProgressMap, error)
	Save(ctx context.Context, progress models.ProgressMap) error
	Clear(ctx context.Context) error
}

// Tracker owns per-card progress records.
// All operations are serialized so that RecordAnswer's read-modify-write
// never loses a concurrent update.
type Tracker struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
	log   *zap.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithLogger sets the logger used for write diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates a Tracker backed by store.
func New(store Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		now:   time.Now,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RecordAnswer applies one answer to a card and persists the updated record.
//
// The record is returned even when saving fails, together with the error.
// If the stored map cannot be read nothing is written.
func (t *Tracker) RecordAnswer(ctx context.Context, cardID string, correct bool) (models.CardProgress, error) {
	if strings.TrimSpace(cardID) == "" {
		return models.CardProgress{}, ErrEmptyCardID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	progress, err := t.store.LoadForUpdate(ctx)
	if err != nil {
		t.log.Error("load progress before answer",
			zap.String("card_id", cardID),
			zap.Error(err),
		)
		return models.CardProgress{}, fmt.Errorf("record answer for %q: %w", cardID, err)
	}
	if progress == nil {
		progress = models.ProgressMap{}
	}
	previous, seen := progress[cardID]
	next := advance(previous, seen, cardID, correct, t.now().UnixMilli())
	progress[cardID] = next

	if err := t.store.Save(ctx, progress); err != nil {
		t.log.Error("save progress",
			zap.String("card_id", cardID),
			zap.Error(err),
		)
		return next, fmt.Errorf("record answer for %q: %w", cardID, err)
	}

	return next, nil
}

// advance computes the record that follows previous after one answer.
func advance(previous models.CardProgress, seen bool, cardID string, correct bool, nowMs int64) models.CardProgress {
	var level, streak int
	switch {
	case !seen && correct:
		level, streak = 1, 1
	case !seen:
		level, streak = 0, 0
	case correct:
		level = min(clampLevel(previous.MasteryLevel)+1, MaxLevel)
		streak = previous.Streak + 1
	default:
		level = max(clampLevel(previous.MasteryLevel)-1, MinLevel)
		streak = 0
	}

	next := models.CardProgress{
		CardID:         cardID,
		MasteryLevel:   level,
		LastReviewed:   nowMs,
		NextReview:     nowMs + Interval(level).Milliseconds(),
		TimesReviewed:  previous.TimesReviewed + 1,
		TimesCorrect:   previous.TimesCorrect,
		TimesIncorrect: previous.TimesIncorrect,
		Streak:         streak,
	}
	if correct {
		next.TimesCorrect++
	} else {
		next.TimesIncorrect++
	}
	return next
}

// Progress returns the record for cardID. The boolean is false for cards
// that have never been answered.
func (t *Tracker) Progress(ctx context.Context, cardID string) (models.CardProgress, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.store.Load(ctx)[cardID]
	return p, ok
}

// AllProgress returns a snapshot of every stored record.
func (t *Tracker) AllProgress(ctx context.Context) models.ProgressMap {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.store.Load(ctx).Clone()
}

// DueForReview filters cardIDs down to the cards that should be studied now,
// keeping input order. A card is due if it is new, its review time has passed,
// or it is still below LearningThreshold.
func (t *Tracker) DueForReview(ctx context.Context, cardIDs []string) []string {
	t.mu.Lock()
	progress := t.store.Load(ctx)
	t.mu.Unlock()

	nowMs := t.now().UnixMilli()
	due := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		p, ok := progress[id]
		if !ok || p.NextReview <= nowMs || p.MasteryLevel < LearningThreshold {
			due = append(due, id)
		}
	}
	return due
}

// Priority scores how urgently a card should be shown; higher comes first.
// New cards score NewCardPriority. Otherwise the score is the overdue time in
// milliseconds plus 100 per rung below MaxLevel+1.
func (t *Tracker) Priority(ctx context.Context, cardID string) int64 {
	p, ok := t.Progress(ctx, cardID)
	return priority(p, ok, t.now().UnixMilli())
}

func priority(p models.CardProgress, seen bool, nowMs int64) int64 {
	if !seen {
		return NewCardPriority
	}
	overdue := max(0, nowMs-p.NextReview)
	return overdue + int64(MaxLevel+1-clampLevel(p.MasteryLevel))*levelWeight
}

// RankByPriority returns cardIDs ordered from highest to lowest priority.
// Ties keep their input order. Every card is scored against one snapshot.
func (t *Tracker) RankByPriority(ctx context.Context, cardIDs []string) []string {
	t.mu.Lock()
	progress := t.store.Load(ctx)
	t.mu.Unlock()

	nowMs := t.now().UnixMilli()
	scores := make(map[string]int64, len(cardIDs))
	for _, id := range cardIDs {
		p, ok := progress[id]
		scores[id] = priority(p, ok, nowMs)
	}

	ranked := append([]string(nil), cardIDs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

// MasteryStats counts cardIDs as new, learning or mastered.
func (t *Tracker) MasteryStats(ctx context.Context, cardIDs []string) models.MasteryStats {
	t.mu.Lock()
	progress := t.store.Load(ctx)
	t.mu.Unlock()

	stats := models.MasteryStats{Total: len(cardIDs)}
	for _, id := range cardIDs {
		p, ok := progress[id]
		switch {
		case !ok:
			stats.New++
		case p.MasteryLevel < LearningThreshold:
			stats.Learning++
		default:
			stats.Mastered++
		}
	}
	return stats
}

// Reset forgets a single card. Other records are left untouched.
func (t *Tracker) Reset(ctx context.Context, cardID string) error {
	if strings.TrimSpace(cardID) == "" {
		return ErrEmptyCardID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	progress, err := t.store.LoadForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("reset %q: %w", cardID, err)
	}
	if _, ok := progress[cardID]; !ok {
		return nil
	}
	delete(progress, cardID)

	if err := t.store.Save(ctx, progress); err != nil {
		return fmt.Errorf("reset %q: %w", cardID, err)
	}
	return nil
}

// ResetAll erases every record.
func (t *Tracker) ResetAll(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Clear(ctx); err != nil {
		return fmt.Errorf("reset all: %w", err)
	}
	t.log.Info("progress cleared")
	return nil
}
