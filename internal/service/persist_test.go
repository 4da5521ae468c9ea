package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/pkg/jobs"
)

func TestPersistHandlerDispatchesByJobType(t *testing.T) {
	settings := &settingsStoreStub{}
	directory := &directoryStoreStub{}
	archive := &archiveStoreStub{}
	handler := NewPersistHandler(settings, directory, archive, NewMetricsService(), nil)

	logo := "data:image/png;base64,AAAA"
	err := handler(context.Background(), jobs.Job{Type: JobSaveSettings, Payload: models.SchoolSettings{MinistryLogo: &logo}})
	require.NoError(t, err)
	require.NotNil(t, settings.settings.MinistryLogo)

	err = handler(context.Background(), jobs.Job{Type: JobSaveDirectory, Payload: []models.DirectoryEntry{{Name: "أحمد علي"}}})
	require.NoError(t, err)
	require.Len(t, directory.entries, 1)

	err = handler(context.Background(), jobs.Job{Type: JobSaveArchive, Payload: []models.ArchiveEntry{{ID: "a1"}}})
	require.NoError(t, err)
	require.Len(t, archive.entries, 1)
}

func TestPersistHandlerRejectsBadPayload(t *testing.T) {
	handler := NewPersistHandler(&settingsStoreStub{}, &directoryStoreStub{}, &archiveStoreStub{}, NewMetricsService(), nil)

	err := handler(context.Background(), jobs.Job{Type: JobSaveArchive, Payload: "not a slice"})
	require.Error(t, err)

	err = handler(context.Background(), jobs.Job{Type: "unknown_job"})
	require.Error(t, err)
}
