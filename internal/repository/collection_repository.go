package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ibdaa-school/docgen-api/internal/models"
)

// CollectionRepository is the persistence adapter: an opaque key-value store
// holding one JSON payload per named collection. It owns no business logic.
type CollectionRepository struct {
	db    *sqlx.DB
	quota int64
}

// NewCollectionRepository constructs the repository.
func NewCollectionRepository(db *sqlx.DB, quotaBytes int64) *CollectionRepository {
	return &CollectionRepository{db: db, quota: quotaBytes}
}

// Get returns the stored payload for the collection. The second return value
// reports presence: a never-written collection is absent, not an error.
func (r *CollectionRepository) Get(ctx context.Context, name string) ([]byte, bool, error) {
	const query = `SELECT value FROM collections WHERE name = ?`
	var raw string
	if err := r.db.GetContext(ctx, &raw, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get collection %s: %w", name, err)
	}
	return []byte(raw), true, nil
}

// Put overwrites the collection payload. Last writer wins at collection
// granularity; a save/load round trip preserves the payload byte-for-byte.
func (r *CollectionRepository) Put(ctx context.Context, name string, value []byte) error {
	const query = `INSERT INTO collections (name, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, name, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("put collection %s: %w", name, err)
	}
	return nil
}

// Usage sums stored payload sizes against the configured quota.
func (r *CollectionRepository) Usage(ctx context.Context) (models.StorageUsage, error) {
	const query = `SELECT name, LENGTH(value) AS size FROM collections ORDER BY name ASC`
	var rows []struct {
		Name string `db:"name"`
		Size int64  `db:"size"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return models.StorageUsage{}, fmt.Errorf("collection usage: %w", err)
	}

	usage := models.StorageUsage{
		QuotaBytes:  r.quota,
		Collections: make(map[string]int64, len(rows)),
	}
	for _, row := range rows {
		usage.Collections[row.Name] = row.Size
		usage.UsedBytes += row.Size
	}
	return usage, nil
}
