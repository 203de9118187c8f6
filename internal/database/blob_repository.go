package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/prepdeck/internal/storage"
)

// BlobRepository stores serialized blobs in the kv_blobs table.
// It implements storage.Backend for both SQLite and PostgreSQL.
type BlobRepository struct {
	db *sqlx.DB
}

// NewBlobRepository creates a new repository instance
func NewBlobRepository(db *sqlx.DB) *BlobRepository {
	return &BlobRepository{db: db}
}

// Get returns the blob stored under key
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := r.db.Rebind(`SELECT blob_value FROM kv_blobs WHERE blob_key = ?`)
	err := r.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blob %q: %w", key, err)
	}
	return []byte(value), nil
}

// Put inserts or replaces the blob stored under key
func (r *BlobRepository) Put(ctx context.Context, key string, value []byte) error {
	query := r.db.Rebind(`
		INSERT INTO kv_blobs (blob_key, blob_value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (blob_key) DO UPDATE SET
			blob_value = excluded.blob_value,
			updated_at = CURRENT_TIMESTAMP
	`)
	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to put blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key
func (r *BlobRepository) Delete(ctx context.Context, key string) error {
	query := r.db.Rebind(`DELETE FROM kv_blobs WHERE blob_key = ?`)
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
