package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ibdaa-school/docgen-api/internal/compose"
	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/pkg/export"
	"github.com/ibdaa-school/docgen-api/pkg/storage"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type documentComposer interface {
	Compose(variant models.DocumentVariant, data models.ActionData, settings models.SchoolSettings) compose.Document
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(doc compose.Document) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix  string
	ResultTTL  time.Duration
	PreviewTTL time.Duration
}

// ExportResult captures successful generation metadata.
type ExportResult struct {
	Filename     string    `json:"filename"`
	RelativePath string    `json:"-"`
	Token        string    `json:"token"`
	URL          string    `json:"url"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ExportService composes the active draft into a document tree, renders it
// to PDF and persists the result behind a signed download link. It also
// produces CSV dumps of the directory and archive collections.
type ExportService struct {
	workspace *WorkspaceService
	composer  documentComposer
	storage   fileStorage
	csv       csvRenderer
	pdf       pdfRenderer
	signer    *storage.SignedURLSigner
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	cfg       ExportConfig
}

// ExportServiceParams groups constructor dependencies.
type ExportServiceParams struct {
	Workspace *WorkspaceService
	Composer  documentComposer
	Storage   fileStorage
	Signer    *storage.SignedURLSigner
	Cache     *CacheService
	Metrics   *MetricsService
	Logger    *zap.Logger
	Config    ExportConfig
	CSV       csvRenderer
	PDF       pdfRenderer
}

// NewExportService constructs an ExportService.
func NewExportService(params ExportServiceParams) *ExportService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := params.Config
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.PreviewTTL <= 0 {
		cfg.PreviewTTL = 10 * time.Minute
	}
	csv := params.CSV
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	pdf := params.PDF
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		workspace: params.Workspace,
		composer:  params.Composer,
		storage:   params.Storage,
		csv:       csv,
		pdf:       pdf,
		signer:    params.Signer,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    logger,
		cfg:       cfg,
	}
}

// Preview composes the active draft into its renderable section tree. The
// composed tree is cached keyed by a digest of the full input, so repeated
// previews of an unchanged draft skip recomposition.
func (s *ExportService) Preview(ctx context.Context) (compose.Document, error) {
	variant, draft, settings, err := s.workspace.CurrentDocument()
	if err != nil {
		return compose.Document{}, err
	}

	key := previewCacheKey(variant, draft, settings)
	var doc compose.Document
	if hit, _ := s.cache.Get(ctx, key, &doc); hit {
		return doc, nil
	}

	doc = s.composer.Compose(variant, draft, settings)
	_ = s.cache.Set(ctx, key, doc, s.cfg.PreviewTTL)
	return doc, nil
}

// PreviewVariant composes an arbitrary variant against the current draft
// without switching the workspace to it. An unknown variant yields the
// composer's placeholder document rather than an error.
func (s *ExportService) PreviewVariant(ctx context.Context, variant models.DocumentVariant) (compose.Document, error) {
	_, draft, settings, err := s.workspace.CurrentDocument()
	if err != nil {
		return compose.Document{}, err
	}
	return s.composer.Compose(variant, draft, settings), nil
}

// GeneratePDF renders the active draft, stores the file and returns a signed
// download link.
func (s *ExportService) GeneratePDF(ctx context.Context) (*ExportResult, error) {
	doc, err := s.Preview(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	payload, err := s.pdf.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	s.metrics.ObserveExport(string(doc.Variant), time.Since(start))

	filename, err := s.workspace.ExportFilename()
	if err != nil {
		return nil, err
	}
	stored := fmt.Sprintf("%s_%s.pdf", time.Now().UTC().Format("20060102_150405"), uuid.NewString()[:8])
	relPath, err := s.storage.Save(stored, payload)
	if err != nil {
		return nil, err
	}

	exportID := uuid.NewString()
	token, expiresAt, err := s.signer.Generate(exportID, relPath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document exported",
		zap.String("variant", string(doc.Variant)),
		zap.String("file", relPath),
		zap.Int("bytes", len(payload)))

	return &ExportResult{
		Filename:     filename + ".pdf",
		RelativePath: relPath,
		Token:        token,
		URL:          s.downloadURL(token),
		ExpiresAt:    expiresAt,
	}, nil
}

// ArchiveCSV dumps the archive collection as CSV.
func (s *ExportService) ArchiveCSV(ctx context.Context) ([]byte, string, error) {
	entries, err := s.workspace.Archive()
	if err != nil {
		return nil, "", err
	}
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"ID":       entry.ID,
			"Saved At": time.UnixMilli(entry.Timestamp).UTC().Format(time.RFC3339),
			"Student":  entry.StudentName,
			"Grade":    entry.Grade,
			"Document": entry.FormType.Title(),
			"Details":  entry.Details,
		})
	}
	dataset := export.Dataset{
		Headers: []string{"ID", "Saved At", "Student", "Grade", "Document", "Details"},
		Rows:    rows,
	}
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, "", err
	}
	return payload, s.timestampedFilename("archive"), nil
}

// DirectoryCSV dumps the student directory as CSV.
func (s *ExportService) DirectoryCSV(ctx context.Context) ([]byte, string, error) {
	entries, err := s.workspace.Directory()
	if err != nil {
		return nil, "", err
	}
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"Name":           entry.Name,
			"Grade":          entry.Grade,
			"Guardian Phone": entry.GuardianPhone,
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Name", "Grade", "Guardian Phone"},
		Rows:    rows,
	}
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, "", err
	}
	return payload, s.timestampedFilename("directory"), nil
}

// ParseToken validates download token metadata.
func (s *ExportService) ParseToken(token string, allowExpired bool) (exportID, relPath string, expiresAt time.Time, err error) {
	return s.signer.Parse(token, allowExpired)
}

// Open returns a handle to the stored file.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	return s.storage.Open(relPath)
}

// Cleanup removes files older than ttl (defaults to configured ResultTTL when ttl <= 0).
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) downloadURL(token string) string {
	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return fmt.Sprintf("%s/export/files/%s", prefix, token)
}

func (s *ExportService) timestampedFilename(kind string) string {
	return fmt.Sprintf("%s_%s.csv", kind, time.Now().UTC().Format("20060102_150405"))
}

func previewCacheKey(variant models.DocumentVariant, data models.ActionData, settings models.SchoolSettings) string {
	payload, _ := json.Marshal(struct {
		Variant  models.DocumentVariant `json:"variant"`
		Data     models.ActionData      `json:"data"`
		Settings models.SchoolSettings  `json:"settings"`
	}{variant, data, settings})
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("preview:%s:%x", variant, sum[:8])
}
