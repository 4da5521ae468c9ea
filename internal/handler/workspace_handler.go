package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/dto"
	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/internal/service"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type workspaceService interface {
	LoadAll(ctx context.Context) (service.WorkspaceState, error)
	State(ctx context.Context) (service.WorkspaceState, error)
	UpdateFields(fields map[string]interface{}) (models.ActionData, error)
	SetVariant(variant models.DocumentVariant) error
	ResetDraft() (models.ActionData, error)
	SelectStudent(name string) (models.ActionData, error)
}

// WorkspaceHandler manages draft and variant HTTP endpoints.
type WorkspaceHandler struct {
	service workspaceService
}

// NewWorkspaceHandler constructs the handler.
func NewWorkspaceHandler(service workspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// Load godoc
// @Summary Load all collections from the local store
// @Tags Workspace
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workspace/load [post]
func (h *WorkspaceHandler) Load(c *gin.Context) {
	state, err := h.service.LoadAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// State godoc
// @Summary Current workspace snapshot
// @Tags Workspace
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workspace [get]
func (h *WorkspaceHandler) State(c *gin.Context) {
	state, err := h.service.State(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state, nil)
}

// UpdateDraft godoc
// @Summary Merge field values into the draft
// @Tags Workspace
// @Accept json
// @Produce json
// @Param payload body dto.UpdateDraftRequest true "Field batch"
// @Success 200 {object} response.Envelope
// @Router /workspace/draft [patch]
func (h *WorkspaceHandler) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid draft payload"))
		return
	}
	draft, err := h.service.UpdateFields(req.Fields)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// SetVariant godoc
// @Summary Switch the active document variant
// @Tags Workspace
// @Accept json
// @Produce json
// @Param payload body dto.SetVariantRequest true "Variant"
// @Success 200 {object} response.Envelope
// @Router /workspace/variant [put]
func (h *WorkspaceHandler) SetVariant(c *gin.Context) {
	var req dto.SetVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid variant payload"))
		return
	}
	if err := h.service.SetVariant(req.Variant); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"variant": req.Variant}, nil)
}

// Reset godoc
// @Summary Reset the draft to its defaults
// @Tags Workspace
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workspace/reset [post]
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	draft, err := h.service.ResetDraft()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}

// SelectStudent godoc
// @Summary Prefill the draft from a directory entry
// @Tags Workspace
// @Accept json
// @Produce json
// @Param payload body dto.SelectStudentRequest true "Student name"
// @Success 200 {object} response.Envelope
// @Router /workspace/select-student [post]
func (h *WorkspaceHandler) SelectStudent(c *gin.Context) {
	var req dto.SelectStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid selection payload"))
		return
	}
	draft, err := h.service.SelectStudent(req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, draft, nil)
}
