package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/dto"
	"github.com/ibdaa-school/docgen-api/internal/models"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type directoryService interface {
	Directory() ([]models.DirectoryEntry, error)
	ImportDirectory(ctx context.Context, entries []models.DirectoryEntry) (int, error)
	Suggestions(query string) ([]models.DirectoryEntry, error)
}

// DirectoryHandler manages the imported student list.
type DirectoryHandler struct {
	service directoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(service directoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// List godoc
// @Summary List directory entries
// @Tags Directory
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /directory [get]
func (h *DirectoryHandler) List(c *gin.Context) {
	entries, err := h.service.Directory()
	if err != nil {
		response.Error(c, err)
		return
	}
	page, pageSize := pageParams(c)
	window, pagination := paginateDirectory(entries, page, pageSize)
	response.JSON(c, http.StatusOK, window, &pagination)
}

// Import godoc
// @Summary Replace the student directory
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body dto.ImportDirectoryRequest true "Directory entries"
// @Success 200 {object} response.Envelope
// @Router /directory [put]
func (h *DirectoryHandler) Import(c *gin.Context) {
	var req dto.ImportDirectoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid directory payload"))
		return
	}
	count, err := h.service.ImportDirectory(c.Request.Context(), req.Entries)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"imported": count}, nil)
}

// Suggestions godoc
// @Summary Autocomplete directory entries by name fragment
// @Tags Directory
// @Produce json
// @Param prefix query string false "Name fragment"
// @Success 200 {object} response.Envelope
// @Router /directory/suggestions [get]
func (h *DirectoryHandler) Suggestions(c *gin.Context) {
	matches, err := h.service.Suggestions(c.Query("prefix"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, matches, nil)
}

func pageParams(c *gin.Context) (int, int) {
	page := 1
	pageSize := 20
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", "20")); err == nil && v > 0 {
		pageSize = v
	}
	return page, pageSize
}

func paginateDirectory(entries []models.DirectoryEntry, page, pageSize int) ([]models.DirectoryEntry, models.Pagination) {
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
