package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/internal/service"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type archiveService interface {
	Archive() ([]models.ArchiveEntry, error)
	SaveToArchive(ctx context.Context) (models.ArchiveEntry, error)
	DeleteArchiveEntry(ctx context.Context, id string, confirmed bool) error
	RestoreArchiveEntry(id string) (service.RestoredDraft, error)
}

// ArchiveHandler manages archive HTTP endpoints.
type ArchiveHandler struct {
	service archiveService
}

// NewArchiveHandler constructs the handler.
func NewArchiveHandler(service archiveService) *ArchiveHandler {
	return &ArchiveHandler{service: service}
}

// List godoc
// @Summary List archive entries, newest first
// @Tags Archive
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /archive [get]
func (h *ArchiveHandler) List(c *gin.Context) {
	entries, err := h.service.Archive()
	if err != nil {
		response.Error(c, err)
		return
	}
	page, pageSize := pageParams(c)
	window, pagination := paginateArchive(entries, page, pageSize)
	response.JSON(c, http.StatusOK, window, &pagination)
}

// Save godoc
// @Summary Snapshot the draft into the archive
// @Tags Archive
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /archive [post]
func (h *ArchiveHandler) Save(c *gin.Context) {
	entry, err := h.service.SaveToArchive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Delete godoc
// @Summary Delete an archive entry
// @Tags Archive
// @Produce json
// @Param id path string true "Entry ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Router /archive/{id} [delete]
func (h *ArchiveHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.service.DeleteArchiveEntry(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Restore godoc
// @Summary Restore an archived draft into the workspace
// @Tags Archive
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Envelope
// @Router /archive/{id}/restore [post]
func (h *ArchiveHandler) Restore(c *gin.Context) {
	restored, err := h.service.RestoreArchiveEntry(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, restored, nil)
}

func paginateArchive(entries []models.ArchiveEntry, page, pageSize int) ([]models.ArchiveEntry, models.Pagination) {
	total := len(entries)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return entries[start:end], models.Pagination{Page: page, PageSize: pageSize, TotalCount: total}
}
