// Package storage persists the flashcard progress map as a single serialized
// blob stored under one fixed key in a pluggable key-value backend.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/prepdeck/pkg/models"
)

// DefaultKey is the namespace under which progress is stored.
const DefaultKey = "flashcards_progress"

// Mastery levels outside this range are clamped on decode.
const (
	minMasteryLevel = 0
	maxMasteryLevel = 5
)

// ErrNotFound is returned by a Backend when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Backend is a minimal key-value store holding opaque blobs.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ProgressStore reads and writes the progress map through a Backend.
type ProgressStore struct {
	backend Backend
	key     string
	log     *zap.Logger
}

// NewProgressStore creates a store for key. An empty key selects DefaultKey.
func NewProgressStore(backend Backend, key string, log *zap.Logger) *ProgressStore {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProgressStore{
		backend: backend,
		key:     key,
		log:     log.With(zap.String("storage_key", key)),
	}
}

// Load returns the stored progress map. Missing, unreadable or corrupt data
// yields an empty map; the failure is logged and never returned.
func (s *ProgressStore) Load(ctx context.Context) models.ProgressMap {
	progress, err := s.LoadForUpdate(ctx)
	if err != nil {
		s.log.Warn("load progress failed, starting empty", zap.Error(err))
		return models.ProgressMap{}
	}
	return progress
}

// LoadForUpdate is Load for callers that write the map back. A missing or
// corrupt blob still yields an empty map, but a backend failure is returned
// so the caller does not overwrite progress it could not read.
func (s *ProgressStore) LoadForUpdate(ctx context.Context) (models.ProgressMap, error) {
	payload, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return models.ProgressMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	progress, err := decode(payload)
	if err != nil {
		s.log.Warn("progress blob is corrupt, starting empty", zap.Error(err))
		return models.ProgressMap{}, nil
	}
	return progress, nil
}

// Save replaces the stored progress map.
func (s *ProgressStore) Save(ctx context.Context, progress models.ProgressMap) error {
	payload, err := encode(progress)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, s.key, payload); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Clear removes the stored progress map entirely.
func (s *ProgressStore) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

func encode(progress models.ProgressMap) ([]byte, error) {
	if progress == nil {
		progress = models.ProgressMap{}
	}
	payload, err := json.Marshal(progress)
	if err != nil {
		return nil, fmt.Errorf("marshal progress: %w", err)
	}
	return payload, nil
}

func decode(payload []byte) (models.ProgressMap, error) {
	var raw map[string]models.CardProgress
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}

	progress := make(models.ProgressMap, len(raw))
	for id, p := range raw {
		if strings.TrimSpace(id) == "" {
			continue
		}
		// The map key is the identity; a stale cardId field is overridden.
		p.CardID = id
		p.MasteryLevel = min(max(p.MasteryLevel, minMasteryLevel), maxMasteryLevel)
		p.TimesReviewed = max(p.TimesReviewed, 0)
		p.TimesCorrect = max(p.TimesCorrect, 0)
		p.TimesIncorrect = max(p.TimesIncorrect, 0)
		p.Streak = max(p.Streak, 0)
		progress[id] = p
	}
	return progress, nil
}
