package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ibdaa-school/docgen-api/internal/models"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/jobs"
)

const maxSuggestions = 5

var illegalFilenameChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// WorkspaceState is a consistent snapshot of everything the workspace holds.
type WorkspaceState struct {
	Variant   models.DocumentVariant  `json:"variant"`
	Draft     models.ActionData       `json:"draft"`
	Settings  models.SchoolSettings   `json:"settings"`
	Directory []models.DirectoryEntry `json:"directory"`
	Archive   []models.ArchiveEntry   `json:"archive"`
	Usage     models.StorageUsage     `json:"usage"`
}

// RestoredDraft is the result of pulling an archive snapshot back into the
// active draft.
type RestoredDraft struct {
	Variant models.DocumentVariant `json:"variant"`
	Draft   models.ActionData      `json:"draft"`
}

// WorkspaceService owns the in-memory working state: the active draft, the
// chosen document variant, branding settings, the student directory and the
// archive. All reads after startup are memory reads; every mutation of a
// persisted collection schedules an asynchronous write of the full snapshot.
//
// Mutations are rejected with a precondition error until LoadAll has run, so
// a write can never clobber collections that were not read back yet.
type WorkspaceService struct {
	mu sync.RWMutex

	variant   models.DocumentVariant
	draft     models.ActionData
	settings  models.SchoolSettings
	directory []models.DirectoryEntry
	archive   []models.ArchiveEntry
	loaded    bool

	settingsRepo  settingsStore
	directoryRepo directoryStore
	archiveRepo   archiveStore
	usage         usageReporter
	queue         persistEnqueuer
	validate      *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
	newID         func() string
}

// WorkspaceServiceParams groups constructor dependencies.
type WorkspaceServiceParams struct {
	Settings  settingsStore
	Directory directoryStore
	Archive   archiveStore
	Usage     usageReporter
	Queue     persistEnqueuer
	Validate  *validator.Validate
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func() string
}

// NewWorkspaceService constructs the workspace around its stores.
func NewWorkspaceService(params WorkspaceServiceParams) *WorkspaceService {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newID := params.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validate
	if validate == nil {
		validate = validator.New()
	}
	return &WorkspaceService{
		variant:       models.VariantInvitationGeneral,
		draft:         models.DefaultActionData(now()),
		settingsRepo:  params.Settings,
		directoryRepo: params.Directory,
		archiveRepo:   params.Archive,
		usage:         params.Usage,
		queue:         params.Queue,
		validate:      validate,
		logger:        logger,
		now:           now,
		newID:         newID,
	}
}

// LoadAll hydrates the workspace from the local store. It fetches the three
// collections and the usage report concurrently, then swaps them in under a
// single lock so a partial failure leaves the workspace untouched and still
// gated.
func (s *WorkspaceService) LoadAll(ctx context.Context) (WorkspaceState, error) {
	var (
		settings  models.SchoolSettings
		directory []models.DirectoryEntry
		archive   []models.ArchiveEntry
		usage     models.StorageUsage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		directory, err = s.directoryRepo.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		archive, err = s.archiveRepo.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		usage, err = s.usage.Usage(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return WorkspaceState{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load workspace collections")
	}

	s.mu.Lock()
	s.settings = settings
	s.directory = directory
	s.archive = archive
	s.loaded = true
	state := s.snapshotLocked()
	s.mu.Unlock()

	state.Usage = usage
	s.logger.Info("workspace loaded",
		zap.Int("directory_entries", len(directory)),
		zap.Int("archive_entries", len(archive)),
		zap.Int64("used_bytes", usage.UsedBytes))
	return state, nil
}

// Loaded reports whether the workspace has been hydrated.
func (s *WorkspaceService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// State returns the current snapshot including live storage usage.
func (s *WorkspaceService) State(ctx context.Context) (WorkspaceState, error) {
	s.mu.RLock()
	if !s.loaded {
		s.mu.RUnlock()
		return WorkspaceState{}, appErrors.ErrNotLoaded
	}
	state := s.snapshotLocked()
	s.mu.RUnlock()

	usage, err := s.usage.Usage(ctx)
	if err != nil {
		return WorkspaceState{}, err
	}
	state.Usage = usage
	return state, nil
}

// SetVariant switches the active document variant.
func (s *WorkspaceService) SetVariant(variant models.DocumentVariant) error {
	if !variant.Valid() {
		return appErrors.ErrUnknownVariant
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return appErrors.ErrNotLoaded
	}
	s.variant = variant
	return nil
}

// UpdateFields merges the named field values into the draft. An unknown
// field name rejects the whole request without applying anything.
func (s *WorkspaceService) UpdateFields(fields map[string]interface{}) (models.ActionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.ActionData{}, appErrors.ErrNotLoaded
	}

	next := s.draft
	for name, value := range fields {
		if err := next.ApplyField(name, value); err != nil {
			return models.ActionData{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("unknown field %q", name))
		}
	}
	s.draft = next
	return s.draft, nil
}

// ResetDraft discards the draft and reseeds the defaults.
func (s *WorkspaceService) ResetDraft() (models.ActionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.ActionData{}, appErrors.ErrNotLoaded
	}
	s.draft = models.DefaultActionData(s.now())
	return s.draft, nil
}

// SelectStudent prefills the draft from a directory entry matched by exact
// name.
func (s *WorkspaceService) SelectStudent(name string) (models.ActionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.ActionData{}, appErrors.ErrNotLoaded
	}
	for _, entry := range s.directory {
		if entry.Name != name {
			continue
		}
		s.draft.StudentName = entry.Name
		s.draft.Grade = entry.Grade
		s.draft.GuardianPhone = entry.GuardianPhone
		return s.draft, nil
	}
	return models.ActionData{}, appErrors.Clone(appErrors.ErrNotFound, "student not found in directory")
}

// Suggestions returns at most five directory entries whose name contains the
// query as a substring. The exact match is excluded so a fully typed name
// stops suggesting itself. An empty query yields nothing.
func (s *WorkspaceService) Suggestions(query string) ([]models.DirectoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, appErrors.ErrNotLoaded
	}
	if query == "" {
		return []models.DirectoryEntry{}, nil
	}
	matches := make([]models.DirectoryEntry, 0, maxSuggestions)
	for _, entry := range s.directory {
		if entry.Name == query || !strings.Contains(entry.Name, query) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == maxSuggestions {
			break
		}
	}
	return matches, nil
}

// SaveToArchive snapshots the draft as a new archive entry, newest first,
// and schedules the archive write.
func (s *WorkspaceService) SaveToArchive(ctx context.Context) (models.ArchiveEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.ArchiveEntry{}, appErrors.ErrNotLoaded
	}
	if strings.TrimSpace(s.draft.StudentName) == "" {
		return models.ArchiveEntry{}, appErrors.Clone(appErrors.ErrValidation, "يرجى اختيار طالب أولاً لحفظ السجل")
	}

	entry := models.ArchiveEntry{
		ID:          s.newID(),
		Timestamp:   s.now().UnixMilli(),
		StudentName: s.draft.StudentName,
		Grade:       s.draft.Grade,
		FormType:    s.variant,
		Details:     reasonSummary(s.draft, s.variant),
		Data:        s.draft,
	}
	s.archive = append([]models.ArchiveEntry{entry}, s.archive...)
	s.schedulePersistLocked(JobSaveArchive)
	return entry, nil
}

// DeleteArchiveEntry removes the entry by id. The caller must pass an
// explicit confirmation flag; without it nothing is touched.
func (s *WorkspaceService) DeleteArchiveEntry(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, "deleting an archive entry requires confirm=true")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return appErrors.ErrNotLoaded
	}
	for i, entry := range s.archive {
		if entry.ID != id {
			continue
		}
		s.archive = append(s.archive[:i], s.archive[i+1:]...)
		s.schedulePersistLocked(JobSaveArchive)
		return nil
	}
	return appErrors.Clone(appErrors.ErrNotFound, "archive entry not found")
}

// RestoreArchiveEntry replaces the draft with the stored snapshot and
// switches to the variant it was saved under. The archive itself is not
// modified.
func (s *WorkspaceService) RestoreArchiveEntry(id string) (RestoredDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return RestoredDraft{}, appErrors.ErrNotLoaded
	}
	for _, entry := range s.archive {
		if entry.ID != id {
			continue
		}
		s.draft = entry.Data
		s.variant = entry.FormType
		return RestoredDraft{Variant: s.variant, Draft: s.draft}, nil
	}
	return RestoredDraft{}, appErrors.Clone(appErrors.ErrNotFound, "archive entry not found")
}

// ImportDirectory replaces the student directory wholesale and schedules the
// write. Entries that fail validation (no name) are dropped.
func (s *WorkspaceService) ImportDirectory(ctx context.Context, entries []models.DirectoryEntry) (int, error) {
	kept := make([]models.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)
		if err := s.validate.Struct(entry); err != nil {
			continue
		}
		kept = append(kept, entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return 0, appErrors.ErrNotLoaded
	}
	s.directory = kept
	s.schedulePersistLocked(JobSaveDirectory)
	return len(kept), nil
}

// Directory returns the imported student list.
func (s *WorkspaceService) Directory() ([]models.DirectoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, appErrors.ErrNotLoaded
	}
	out := make([]models.DirectoryEntry, len(s.directory))
	copy(out, s.directory)
	return out, nil
}

// Archive returns the saved entries, newest first.
func (s *WorkspaceService) Archive() ([]models.ArchiveEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, appErrors.ErrNotLoaded
	}
	out := make([]models.ArchiveEntry, len(s.archive))
	copy(out, s.archive)
	return out, nil
}

// Settings returns the branding configuration.
func (s *WorkspaceService) Settings() (models.SchoolSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return models.SchoolSettings{}, appErrors.ErrNotLoaded
	}
	return s.settings, nil
}

// UpdateAsset sets or clears one branding image and schedules the settings
// write. A nil payload clears the slot.
func (s *WorkspaceService) UpdateAsset(ctx context.Context, key string, payload *string) (models.SchoolSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return models.SchoolSettings{}, appErrors.ErrNotLoaded
	}
	switch key {
	case models.AssetMinistryLogo:
		s.settings.MinistryLogo = payload
	case models.AssetSchoolStamp:
		s.settings.SchoolStamp = payload
	case models.AssetPrincipalSignature:
		s.settings.PrincipalSignature = payload
	case models.AssetCommitteeHeadSignature:
		s.settings.CommitteeHeadSignature = payload
	default:
		return models.SchoolSettings{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown asset %q", key))
	}
	s.schedulePersistLocked(JobSaveSettings)
	return s.settings, nil
}

// Usage reports how much of the store quota is consumed.
func (s *WorkspaceService) Usage(ctx context.Context) (models.StorageUsage, error) {
	return s.usage.Usage(ctx)
}

// CurrentDocument returns the variant and draft for composition.
func (s *WorkspaceService) CurrentDocument() (models.DocumentVariant, models.ActionData, models.SchoolSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", models.ActionData{}, models.SchoolSettings{}, appErrors.ErrNotLoaded
	}
	return s.variant, s.draft, s.settings, nil
}

// ExportFilename derives the download filename from the draft: student name,
// optional grade, then the variant title. Characters that are illegal in
// filenames become dashes, which also turns a "5/1" grade into "5-1".
func (s *WorkspaceService) ExportFilename() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", appErrors.ErrNotLoaded
	}
	return exportFilename(s.draft, s.variant), nil
}

func exportFilename(data models.ActionData, variant models.DocumentVariant) string {
	student := data.StudentName
	if student == "" {
		student = "طالب"
	}
	grade := ""
	if data.Grade != "" {
		grade = " - " + data.Grade
	}
	raw := student + grade + " - " + variant.Title()
	return illegalFilenameChars.ReplaceAllString(raw, "-")
}

// reasonSummary joins the active reason labels in fixed order. A temporary
// suspension decision always carries its own label; with nothing active the
// generic label is used.
func reasonSummary(data models.ActionData, variant models.DocumentVariant) string {
	var labels []string
	if data.ReasonLateness {
		labels = append(labels, models.ReasonLabelLateness)
	}
	if data.ReasonAbsence {
		labels = append(labels, models.ReasonLabelAbsence)
	}
	if data.ReasonBehavior {
		labels = append(labels, models.ReasonLabelBehavior)
	}
	if variant == models.VariantAnnex14Suspension {
		labels = append(labels, models.ReasonLabelSuspension)
	}
	if len(labels) == 0 {
		return models.GenericReasonLabel
	}
	return strings.Join(labels, "، ")
}

func (s *WorkspaceService) snapshotLocked() WorkspaceState {
	state := WorkspaceState{
		Variant:  s.variant,
		Draft:    s.draft,
		Settings: s.settings,
	}
	state.Directory = make([]models.DirectoryEntry, len(s.directory))
	copy(state.Directory, s.directory)
	state.Archive = make([]models.ArchiveEntry, len(s.archive))
	copy(state.Archive, s.archive)
	return state
}

// schedulePersistLocked snapshots the named collection and hands it to the
// background queue. Enqueue failures are logged and swallowed so a full
// buffer never blocks or fails the interactive path.
func (s *WorkspaceService) schedulePersistLocked(jobType string) {
	if s.queue == nil {
		return
	}
	var payload interface{}
	switch jobType {
	case JobSaveSettings:
		payload = s.settings
	case JobSaveDirectory:
		snapshot := make([]models.DirectoryEntry, len(s.directory))
		copy(snapshot, s.directory)
		payload = snapshot
	case JobSaveArchive:
		snapshot := make([]models.ArchiveEntry, len(s.archive))
		copy(snapshot, s.archive)
		payload = snapshot
	default:
		return
	}
	job := jobs.Job{ID: s.newID(), Type: jobType, Payload: payload}
	if err := s.queue.Enqueue(job); err != nil {
		s.logger.Warn("persist enqueue failed", zap.String("job", jobType), zap.Error(err))
	}
}
