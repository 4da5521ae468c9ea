package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ibdaa-school/docgen-api/internal/models"
)

// collectionStore is the narrow adapter surface the typed stores build on.
type collectionStore interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Put(ctx context.Context, name string, value []byte) error
}

// SettingsRepository persists the branding settings collection.
type SettingsRepository struct {
	store collectionStore
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(store collectionStore) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Load returns the stored settings, or the zero value when never saved.
func (r *SettingsRepository) Load(ctx context.Context) (models.SchoolSettings, error) {
	var settings models.SchoolSettings
	raw, ok, err := r.store.Get(ctx, models.CollectionSettings)
	if err != nil || !ok {
		return settings, err
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.SchoolSettings{}, fmt.Errorf("decode settings collection: %w", err)
	}
	return settings, nil
}

// Save overwrites the settings collection.
func (r *SettingsRepository) Save(ctx context.Context, settings models.SchoolSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings collection: %w", err)
	}
	return r.store.Put(ctx, models.CollectionSettings, raw)
}

// DirectoryRepository persists the imported student directory.
type DirectoryRepository struct {
	store collectionStore
}

// NewDirectoryRepository constructs the repository.
func NewDirectoryRepository(store collectionStore) *DirectoryRepository {
	return &DirectoryRepository{store: store}
}

// Load returns all directory entries, empty when never imported.
func (r *DirectoryRepository) Load(ctx context.Context) ([]models.DirectoryEntry, error) {
	raw, ok, err := r.store.Get(ctx, models.CollectionDirectory)
	if err != nil || !ok {
		return nil, err
	}
	var entries []models.DirectoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode directory collection: %w", err)
	}
	return entries, nil
}

// Save replaces the directory wholesale.
func (r *DirectoryRepository) Save(ctx context.Context, entries []models.DirectoryEntry) error {
	if entries == nil {
		entries = []models.DirectoryEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode directory collection: %w", err)
	}
	return r.store.Put(ctx, models.CollectionDirectory, raw)
}

// ArchiveRepository persists the archive collection, newest first.
type ArchiveRepository struct {
	store collectionStore
}

// NewArchiveRepository constructs the repository.
func NewArchiveRepository(store collectionStore) *ArchiveRepository {
	return &ArchiveRepository{store: store}
}

// Load returns all archive entries in stored order.
func (r *ArchiveRepository) Load(ctx context.Context) ([]models.ArchiveEntry, error) {
	raw, ok, err := r.store.Get(ctx, models.CollectionArchive)
	if err != nil || !ok {
		return nil, err
	}
	var entries []models.ArchiveEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode archive collection: %w", err)
	}
	return entries, nil
}

// Save overwrites the archive collection.
func (r *ArchiveRepository) Save(ctx context.Context, entries []models.ArchiveEntry) error {
	if entries == nil {
		entries = []models.ArchiveEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode archive collection: %w", err)
	}
	return r.store.Put(ctx, models.CollectionArchive, raw)
}
