package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/prepdeck/internal/mastery"
	"github.com/example/prepdeck/internal/storage"
)

func connectSQLite(t *testing.T) *BlobRepository {
	t.Helper()
	db, err := Connect(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "data", "prepdeck.db"),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBlobRepository(db)
}

func exerciseRepository(t *testing.T, repo *BlobRepository) {
	t.Helper()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Put(ctx, "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, "k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Fatalf("expected upserted value, got %q", got)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBlobRepositorySQLite(t *testing.T) {
	exerciseRepository(t, connectSQLite(t))
}

func TestBlobRepositoryPostgres(t *testing.T) {
	dsn := os.Getenv("PREPDECK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PREPDECK_TEST_POSTGRES_DSN not set")
	}
	db, err := Connect(context.Background(), Config{Driver: DriverPostgres, DSN: dsn})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()
	exerciseRepository(t, NewBlobRepository(db))
}

func TestTrackerOverSQLite(t *testing.T) {
	repo := connectSQLite(t)
	ctx := context.Background()
	tracker := mastery.New(storage.NewProgressStore(repo, "", nil))

	for _, correct := range []bool{true, true, false} {
		if _, err := tracker.RecordAnswer(ctx, "c1", correct); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}
	p, ok := tracker.Progress(ctx, "c1")
	if !ok {
		t.Fatal("missing record")
	}
	if p.MasteryLevel != 1 || p.TimesReviewed != 3 || p.Streak != 0 {
		t.Fatalf("unexpected record %+v", p)
	}

	if err := tracker.ResetAll(ctx); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	if n := len(tracker.AllProgress(ctx)); n != 0 {
		t.Fatalf("expected empty store, got %d records", n)
	}
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect(context.Background(), Config{Driver: "mysql", DSN: "x"}); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if _, err := Connect(context.Background(), Config{Driver: DriverPostgres}); err == nil {
		t.Fatal("expected error for missing postgres url")
	}
}
