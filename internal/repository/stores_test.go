package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
)

// memStore keeps collections in a map, mirroring the adapter contract.
type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(_ context.Context, name string) ([]byte, bool, error) {
	raw, ok := m.data[name]
	return raw, ok, nil
}

func (m *memStore) Put(_ context.Context, name string, value []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[name] = value
	return nil
}

func TestArchiveRepositoryRoundTrip(t *testing.T) {
	store := &memStore{}
	repo := NewArchiveRepository(store)
	ctx := context.Background()

	entries := []models.ArchiveEntry{
		{
			ID:          "e1",
			Timestamp:   1700000000000,
			StudentName: "خالد",
			Grade:       "5/1",
			FormType:    models.VariantAnnex5Warning,
			Details:     "تأخر",
			Data:        models.ActionData{StudentName: "خالد", ReasonLateness: true, LatenessDates: "أمس"},
		},
	}
	require.NoError(t, repo.Save(ctx, entries))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestDirectoryRepositoryAbsentCollection(t *testing.T) {
	repo := NewDirectoryRepository(&memStore{})

	entries, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	store := &memStore{}
	repo := NewSettingsRepository(store)
	ctx := context.Background()

	logo := "data:image/png;base64,AAAA"
	settings := models.SchoolSettings{MinistryLogo: &logo}
	require.NoError(t, repo.Save(ctx, settings))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
	require.NotNil(t, loaded.MinistryLogo)
	assert.Nil(t, loaded.SchoolStamp)
}
