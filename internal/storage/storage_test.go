package storage

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/prepdeck/pkg/models"
)

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (brokenBackend) Put(context.Context, string, []byte) error { return errors.New("read only") }
func (brokenBackend) Delete(context.Context, string) error      { return errors.New("read only") }

func sampleProgress() models.ProgressMap {
	return models.ProgressMap{
		"carre-12-forward": {
			CardID:         "carre-12-forward",
			MasteryLevel:   4,
			LastReviewed:   1767225600123,
			NextReview:     1767312000123,
			TimesReviewed:  9,
			TimesCorrect:   6,
			TimesIncorrect: 3,
			Streak:         2,
		},
		"big": {
			CardID:       "big",
			LastReviewed: math.MaxInt64 - 1,
			NextReview:   math.MaxInt64 - 1,
		},
	}
}

func TestProgressStoreRoundTrip(t *testing.T) {
	backends := map[string]Backend{
		"memory": NewMemoryBackend(),
	}
	fileBackend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	backends["file"] = fileBackend

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := NewProgressStore(backend, "", nil)

			want := sampleProgress()
			if err := store.Save(ctx, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got := store.Load(ctx)
			if len(got) != len(want) {
				t.Fatalf("loaded %d records, want %d", len(got), len(want))
			}
			for id, p := range want {
				if got[id] != p {
					t.Fatalf("record %q = %+v, want %+v", id, got[id], p)
				}
			}

			if err := store.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if n := len(store.Load(ctx)); n != 0 {
				t.Fatalf("loaded %d records after Clear", n)
			}
			if err := store.Clear(ctx); err != nil {
				t.Fatalf("second Clear: %v", err)
			}
		})
	}
}

func TestLoadFailsOpen(t *testing.T) {
	ctx := context.Background()
	cases := map[string][]byte{
		"garbage":    []byte("{not json"),
		"array":      []byte(`[1,2,3]`),
		"wrong type": []byte(`{"c1": {"masteryLevel": "high"}}`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			backend := NewMemoryBackend()
			if err := backend.Put(ctx, DefaultKey, payload); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got := NewProgressStore(backend, DefaultKey, nil).Load(ctx)
			if got == nil || len(got) != 0 {
				t.Fatalf("Load = %v, want empty map", got)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		got := NewProgressStore(NewMemoryBackend(), "", nil).Load(ctx)
		if got == nil || len(got) != 0 {
			t.Fatalf("Load = %v, want empty map", got)
		}
	})

	t.Run("backend error", func(t *testing.T) {
		got := NewProgressStore(brokenBackend{}, "", nil).Load(ctx)
		if got == nil || len(got) != 0 {
			t.Fatalf("Load = %v, want empty map", got)
		}
	})
}

func TestLoadForUpdateReportsBackendError(t *testing.T) {
	ctx := context.Background()

	if _, err := NewProgressStore(brokenBackend{}, "", nil).LoadForUpdate(ctx); err == nil {
		t.Fatal("expected backend error")
	}

	backend := NewMemoryBackend()
	if err := backend.Put(ctx, DefaultKey, []byte("{not json")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := NewProgressStore(backend, "", nil).LoadForUpdate(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("corrupt blob: got %v, %v; want empty map and no error", got, err)
	}

	got, err = NewProgressStore(NewMemoryBackend(), "", nil).LoadForUpdate(ctx)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("missing blob: got %v, %v; want empty map and no error", got, err)
	}
}

func TestLoadClampsOutOfRangeFields(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	blob := `{"hi":{"masteryLevel":9,"timesCorrect":-1,"streak":-4},"lo":{"masteryLevel":-2,"timesIncorrect":-7,"timesReviewed":-2}}`
	if err := backend.Put(ctx, DefaultKey, []byte(blob)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got := NewProgressStore(backend, "", nil).Load(ctx)

	if hi := got["hi"]; hi.MasteryLevel != 5 || hi.TimesCorrect != 0 || hi.Streak != 0 {
		t.Fatalf("hi = %+v, want level 5 and zeroed counters", hi)
	}
	if lo := got["lo"]; lo.MasteryLevel != 0 || lo.TimesIncorrect != 0 || lo.TimesReviewed != 0 {
		t.Fatalf("lo = %+v, want level 0 and zeroed counters", lo)
	}
}

func TestLoadNormalizesIdentity(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	payload := []byte(`{"c1":{"cardId":"stale","masteryLevel":2},"":{"cardId":"","masteryLevel":1}}`)
	if err := backend.Put(ctx, DefaultKey, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got := NewProgressStore(backend, "", nil).Load(ctx)
	if len(got) != 1 {
		t.Fatalf("loaded %v, want only c1", got)
	}
	if got["c1"].CardID != "c1" || got["c1"].MasteryLevel != 2 {
		t.Fatalf("c1 = %+v", got["c1"])
	}
}

func TestLoadReadsBrowserExport(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	payload := []byte(`{"cube-3-forward":{"cardId":"cube-3-forward","masteryLevel":1,"lastReviewed":1730000000000,"nextReview":1730000060000,"timesReviewed":1,"timesCorrect":1,"timesIncorrect":0,"streak":1}}`)
	if err := backend.Put(ctx, DefaultKey, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	p := NewProgressStore(backend, "", nil).Load(ctx)["cube-3-forward"]
	if p.NextReview-p.LastReviewed != 60000 || p.Streak != 1 || p.TimesCorrect != 1 {
		t.Fatalf("unexpected record %+v", p)
	}
}

func TestSaveReportsBackendError(t *testing.T) {
	store := NewProgressStore(brokenBackend{}, "", nil)
	if err := store.Save(context.Background(), sampleProgress()); err == nil {
		t.Fatal("expected save error")
	}
	if err := store.Clear(context.Background()); err == nil {
		t.Fatal("expected clear error")
	}
}

func TestKeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	a := NewProgressStore(backend, "alice", nil)
	b := NewProgressStore(backend, "bob", nil)

	if err := a.Save(ctx, sampleProgress()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n := len(b.Load(ctx)); n != 0 {
		t.Fatalf("bob sees %d records", n)
	}
}

func TestFileBackendEscapesKeys(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()

	if err := backend.Put(ctx, "../escape", []byte("{}")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file in %s, got %d", dir, len(entries))
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); !os.IsNotExist(err) {
		t.Fatal("key escaped the storage directory")
	}
	if _, err := backend.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing error = %v, want ErrNotFound", err)
	}
}

func TestNewFileBackendRequiresDir(t *testing.T) {
	if _, err := NewFileBackend("  "); err == nil {
		t.Fatal("expected error for blank directory")
	}
}

func TestMemoryBackendHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryBackend().Put(ctx, "k", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Put error = %v, want context.Canceled", err)
	}
}
