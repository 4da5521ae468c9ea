package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/service"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type exportService interface {
	GeneratePDF(ctx context.Context) (*service.ExportResult, error)
	ParseToken(token string, allowExpired bool) (exportID, relPath string, expiresAt time.Time, err error)
	Open(relPath string) (*os.File, error)
	ArchiveCSV(ctx context.Context) ([]byte, string, error)
	DirectoryCSV(ctx context.Context) ([]byte, string, error)
}

// ExportHandler manages document rendering and downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// GeneratePDF godoc
// @Summary Render the active draft to PDF behind a signed link
// @Tags Export
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /export/pdf [post]
func (h *ExportHandler) GeneratePDF(c *gin.Context) {
	result, err := h.service.GeneratePDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Download godoc
// @Summary Download a rendered document by signed token
// @Tags Export
// @Produce application/pdf
// @Param token path string true "Signed token"
// @Success 200 {file} binary
// @Router /export/files/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	_, relPath, _, err := h.service.ParseToken(c.Param("token"), false)
	if err != nil {
		response.Error(c, appErrors.ErrLinkExpired)
		return
	}
	file, err := h.service.Open(relPath)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exported file no longer available"))
		return
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", info.Name()))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", file, nil)
}

// ArchiveCSV godoc
// @Summary Export the archive as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} binary
// @Router /export/archive.csv [get]
func (h *ExportHandler) ArchiveCSV(c *gin.Context) {
	h.serveCSV(c, h.service.ArchiveCSV)
}

// DirectoryCSV godoc
// @Summary Export the student directory as CSV
// @Tags Export
// @Produce text/csv
// @Success 200 {file} binary
// @Router /export/directory.csv [get]
func (h *ExportHandler) DirectoryCSV(c *gin.Context) {
	h.serveCSV(c, h.service.DirectoryCSV)
}

func (h *ExportHandler) serveCSV(c *gin.Context, produce func(context.Context) ([]byte, string, error)) {
	payload, filename, err := produce(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/csv", payload)
}
