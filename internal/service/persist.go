package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/pkg/jobs"
)

// Background job types for collection writes.
const (
	JobSaveSettings  = "save_settings"
	JobSaveDirectory = "save_directory"
	JobSaveArchive   = "save_archive"
)

type settingsStore interface {
	Load(ctx context.Context) (models.SchoolSettings, error)
	Save(ctx context.Context, settings models.SchoolSettings) error
}

type directoryStore interface {
	Load(ctx context.Context) ([]models.DirectoryEntry, error)
	Save(ctx context.Context, entries []models.DirectoryEntry) error
}

type archiveStore interface {
	Load(ctx context.Context) ([]models.ArchiveEntry, error)
	Save(ctx context.Context, entries []models.ArchiveEntry) error
}

type usageReporter interface {
	Usage(ctx context.Context) (models.StorageUsage, error)
}

type persistEnqueuer interface {
	Enqueue(job jobs.Job) error
}

// NewPersistHandler returns the job handler that flushes collection
// snapshots to the local store. Each job carries the full snapshot taken at
// enqueue time, so a later job for the same collection simply wins.
func NewPersistHandler(settings settingsStore, directory directoryStore, archive archiveStore, metrics *MetricsService, logger *zap.Logger) jobs.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, job jobs.Job) error {
		var err error
		switch job.Type {
		case JobSaveSettings:
			snapshot, ok := job.Payload.(models.SchoolSettings)
			if !ok {
				err = fmt.Errorf("unexpected payload %T for %s", job.Payload, job.Type)
				break
			}
			err = settings.Save(ctx, snapshot)
		case JobSaveDirectory:
			snapshot, ok := job.Payload.([]models.DirectoryEntry)
			if !ok {
				err = fmt.Errorf("unexpected payload %T for %s", job.Payload, job.Type)
				break
			}
			err = directory.Save(ctx, snapshot)
		case JobSaveArchive:
			snapshot, ok := job.Payload.([]models.ArchiveEntry)
			if !ok {
				err = fmt.Errorf("unexpected payload %T for %s", job.Payload, job.Type)
				break
			}
			err = archive.Save(ctx, snapshot)
		default:
			err = fmt.Errorf("unknown persist job type %s", job.Type)
		}

		metrics.RecordPersist(job.Type, err)
		if err != nil {
			logger.Warn("collection write failed", zap.String("job", job.Type), zap.Error(err))
			return err
		}
		logger.Debug("collection written", zap.String("job", job.Type))
		return nil
	}
}
