package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ibdaa-school/docgen-api/internal/models"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/jobs"
)

type settingsStoreStub struct {
	settings models.SchoolSettings
	loadErr  error
}

func (s *settingsStoreStub) Load(ctx context.Context) (models.SchoolSettings, error) {
	return s.settings, s.loadErr
}

func (s *settingsStoreStub) Save(ctx context.Context, settings models.SchoolSettings) error {
	s.settings = settings
	return nil
}

type directoryStoreStub struct {
	entries []models.DirectoryEntry
}

func (s *directoryStoreStub) Load(ctx context.Context) ([]models.DirectoryEntry, error) {
	return s.entries, nil
}

func (s *directoryStoreStub) Save(ctx context.Context, entries []models.DirectoryEntry) error {
	s.entries = entries
	return nil
}

type archiveStoreStub struct {
	entries []models.ArchiveEntry
}

func (s *archiveStoreStub) Load(ctx context.Context) ([]models.ArchiveEntry, error) {
	return s.entries, nil
}

func (s *archiveStoreStub) Save(ctx context.Context, entries []models.ArchiveEntry) error {
	s.entries = entries
	return nil
}

type usageStub struct{}

func (usageStub) Usage(ctx context.Context) (models.StorageUsage, error) {
	return models.StorageUsage{UsedBytes: 1024, QuotaBytes: 50 * 1024 * 1024}, nil
}

type queueStub struct {
	enqueued []jobs.Job
	err      error
}

func (q *queueStub) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func (q *queueStub) lastType() string {
	if len(q.enqueued) == 0 {
		return ""
	}
	return q.enqueued[len(q.enqueued)-1].Type
}

type workspaceFixture struct {
	svc       *WorkspaceService
	queue     *queueStub
	directory *directoryStoreStub
	archive   *archiveStoreStub
}

func newWorkspaceFixture(t *testing.T) *workspaceFixture {
	t.Helper()
	queue := &queueStub{}
	directory := &directoryStoreStub{entries: []models.DirectoryEntry{
		{Name: "أحمد علي", Grade: "5/1", GuardianPhone: "99123456"},
		{Name: "أحمد سعيد", Grade: "5/2", GuardianPhone: "91234567"},
		{Name: "عمر خالد", Grade: "6/1"},
	}}
	archive := &archiveStoreStub{}
	ids := 0
	svc := NewWorkspaceService(WorkspaceServiceParams{
		Settings:  &settingsStoreStub{},
		Directory: directory,
		Archive:   archive,
		Usage:     usageStub{},
		Queue:     queue,
		Now:       func() time.Time { return time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC) },
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		},
	})
	return &workspaceFixture{svc: svc, queue: queue, directory: directory, archive: archive}
}

func loadedWorkspace(t *testing.T) *workspaceFixture {
	t.Helper()
	fx := newWorkspaceFixture(t)
	_, err := fx.svc.LoadAll(context.Background())
	require.NoError(t, err)
	return fx
}

func TestWorkspaceMutationsGatedUntilLoaded(t *testing.T) {
	fx := newWorkspaceFixture(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{"studentName": "أحمد علي"})
	require.ErrorIs(t, err, appErrors.ErrNotLoaded)

	_, err = fx.svc.SaveToArchive(context.Background())
	require.ErrorIs(t, err, appErrors.ErrNotLoaded)

	_, err = fx.svc.ImportDirectory(context.Background(), nil)
	require.ErrorIs(t, err, appErrors.ErrNotLoaded)

	require.Empty(t, fx.queue.enqueued)
}

func TestLoadAllHydratesState(t *testing.T) {
	fx := newWorkspaceFixture(t)

	state, err := fx.svc.LoadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.VariantInvitationGeneral, state.Variant)
	require.Len(t, state.Directory, 3)
	require.Equal(t, "2025-03-10", state.Draft.IncidentDate)
	require.Equal(t, "1", state.Draft.InvitationDeadline)
	require.Equal(t, int64(1024), state.Usage.UsedBytes)
}

func TestLoadAllFailureLeavesWorkspaceGated(t *testing.T) {
	fx := newWorkspaceFixture(t)
	failing := &settingsStoreStub{loadErr: errors.New("disk gone")}
	fx.svc.settingsRepo = failing

	_, err := fx.svc.LoadAll(context.Background())
	require.Error(t, err)

	_, err = fx.svc.UpdateFields(map[string]interface{}{"grade": "5/1"})
	require.ErrorIs(t, err, appErrors.ErrNotLoaded)
}

func TestUpdateFieldsRejectsUnknownNameAtomically(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{
		"studentName": "أحمد علي",
		"noSuchField": "x",
	})
	require.Error(t, err)

	state, err := fx.svc.State(context.Background())
	require.NoError(t, err)
	require.Empty(t, state.Draft.StudentName)
}

func TestUpdateFieldsCoercesCheckboxValues(t *testing.T) {
	fx := loadedWorkspace(t)

	draft, err := fx.svc.UpdateFields(map[string]interface{}{
		"reasonLateness": true,
		"reasonAbsence":  "true",
		"latenessDates":  "2025-03-09",
	})
	require.NoError(t, err)
	require.True(t, draft.ReasonLateness)
	require.True(t, draft.ReasonAbsence)
	require.Equal(t, "2025-03-09", draft.LatenessDates)
}

func TestSuggestionsSubstringMatching(t *testing.T) {
	fx := loadedWorkspace(t)

	matches, err := fx.svc.Suggestions("أحمد")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// The fully typed name must not suggest itself.
	matches, err = fx.svc.Suggestions("أحمد علي")
	require.NoError(t, err)
	require.Empty(t, matches)

	matches, err = fx.svc.Suggestions("")
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestSuggestionsCappedAtFive(t *testing.T) {
	fx := newWorkspaceFixture(t)
	for i := 0; i < 8; i++ {
		fx.directory.entries = append(fx.directory.entries, models.DirectoryEntry{Name: fmt.Sprintf("سالم %d", i)})
	}
	_, err := fx.svc.LoadAll(context.Background())
	require.NoError(t, err)

	matches, err := fx.svc.Suggestions("سالم")
	require.NoError(t, err)
	require.Len(t, matches, 5)
}

func TestSelectStudentPrefillsDraft(t *testing.T) {
	fx := loadedWorkspace(t)

	draft, err := fx.svc.SelectStudent("أحمد علي")
	require.NoError(t, err)
	require.Equal(t, "أحمد علي", draft.StudentName)
	require.Equal(t, "5/1", draft.Grade)
	require.Equal(t, "99123456", draft.GuardianPhone)

	_, err = fx.svc.SelectStudent("مجهول")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSaveToArchiveRequiresStudentName(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.SaveToArchive(context.Background())
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	require.Empty(t, fx.queue.enqueued)
}

func TestSaveToArchiveSummaryAndOrdering(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{
		"studentName":    "أحمد علي",
		"grade":          "5/1",
		"reasonLateness": true,
	})
	require.NoError(t, err)

	first, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "تأخر", first.Details)
	require.Equal(t, models.VariantInvitationGeneral, first.FormType)
	require.Equal(t, JobSaveArchive, fx.queue.lastType())

	_, err = fx.svc.UpdateFields(map[string]interface{}{"reasonBehavior": true})
	require.NoError(t, err)
	second, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "تأخر، سلوك", second.Details)

	entries, err := fx.svc.Archive()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, second.ID, entries[0].ID)
}

func TestSaveToArchiveSuspensionLabel(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{"studentName": "أحمد علي"})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SetVariant(models.VariantAnnex14Suspension))

	entry, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "فصل مؤقت", entry.Details)
}

func TestSaveToArchiveGenericLabel(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{"studentName": "أحمد علي"})
	require.NoError(t, err)

	entry, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)
	require.Equal(t, "إجراء عام", entry.Details)
}

func TestDeleteArchiveEntryRequiresConfirmation(t *testing.T) {
	fx := loadedWorkspace(t)
	_, err := fx.svc.UpdateFields(map[string]interface{}{"studentName": "أحمد علي"})
	require.NoError(t, err)
	entry, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)

	err = fx.svc.DeleteArchiveEntry(context.Background(), entry.ID, false)
	require.ErrorIs(t, err, appErrors.ErrConfirmationRequired)

	entries, err := fx.svc.Archive()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, fx.svc.DeleteArchiveEntry(context.Background(), entry.ID, true))
	entries, err = fx.svc.Archive()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRestoreArchiveEntryRoundTrip(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{
		"studentName":   "أحمد علي",
		"grade":         "5/1",
		"reasonAbsence": true,
		"absenceDates":  "2025-03-02",
		"guardianPhone": "99123456",
	})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SetVariant(models.VariantAnnex5Warning))
	saved, err := fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)

	_, err = fx.svc.ResetDraft()
	require.NoError(t, err)
	require.NoError(t, fx.svc.SetVariant(models.VariantInvitationGeneral))

	restored, err := fx.svc.RestoreArchiveEntry(saved.ID)
	require.NoError(t, err)
	require.Equal(t, models.VariantAnnex5Warning, restored.Variant)
	require.Equal(t, saved.Data, restored.Draft)

	// The archive itself stays intact.
	entries, err := fx.svc.Archive()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestImportDirectoryReplacesAndPersists(t *testing.T) {
	fx := loadedWorkspace(t)

	count, err := fx.svc.ImportDirectory(context.Background(), []models.DirectoryEntry{
		{Name: "سعيد ناصر", Grade: "7/2"},
		{Name: "   "},
		{Name: "خالد سيف", Grade: "8/1", GuardianPhone: "92000000"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Equal(t, JobSaveDirectory, fx.queue.lastType())

	entries, err := fx.svc.Directory()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "سعيد ناصر", entries[0].Name)
}

func TestUpdateAsset(t *testing.T) {
	fx := loadedWorkspace(t)

	logo := "data:image/png;base64,aGVsbG8="
	settings, err := fx.svc.UpdateAsset(context.Background(), models.AssetMinistryLogo, &logo)
	require.NoError(t, err)
	require.NotNil(t, settings.MinistryLogo)
	require.Equal(t, JobSaveSettings, fx.queue.lastType())

	settings, err = fx.svc.UpdateAsset(context.Background(), models.AssetMinistryLogo, nil)
	require.NoError(t, err)
	require.Nil(t, settings.MinistryLogo)

	_, err = fx.svc.UpdateAsset(context.Background(), "watermark", &logo)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSetVariantRejectsUnknown(t *testing.T) {
	fx := loadedWorkspace(t)
	require.ErrorIs(t, fx.svc.SetVariant("annex_99"), appErrors.ErrUnknownVariant)
}

func TestExportFilename(t *testing.T) {
	fx := loadedWorkspace(t)

	_, err := fx.svc.UpdateFields(map[string]interface{}{
		"studentName": "أحمد علي",
		"grade":       "5/1",
	})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SetVariant(models.VariantAnnex5Warning))

	name, err := fx.svc.ExportFilename()
	require.NoError(t, err)
	require.Equal(t, "أحمد علي - 5-1 - "+models.VariantAnnex5Warning.Title(), name)
}

func TestExportFilenameDefaults(t *testing.T) {
	fx := loadedWorkspace(t)

	name, err := fx.svc.ExportFilename()
	require.NoError(t, err)
	require.Equal(t, "طالب - "+models.VariantInvitationGeneral.Title(), name)
}

func TestPersistEnqueueFailureDoesNotSurface(t *testing.T) {
	fx := loadedWorkspace(t)
	fx.queue.err = errors.New("buffer full")

	_, err := fx.svc.UpdateFields(map[string]interface{}{"studentName": "أحمد علي"})
	require.NoError(t, err)
	_, err = fx.svc.SaveToArchive(context.Background())
	require.NoError(t, err)
}
