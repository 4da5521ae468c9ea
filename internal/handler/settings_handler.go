package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/dto"
	"github.com/ibdaa-school/docgen-api/internal/models"
	appErrors "github.com/ibdaa-school/docgen-api/pkg/errors"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type settingsService interface {
	Settings() (models.SchoolSettings, error)
	UpdateAsset(ctx context.Context, key string, payload *string) (models.SchoolSettings, error)
	Usage(ctx context.Context) (models.StorageUsage, error)
}

// SettingsHandler manages branding settings endpoints.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler constructs the handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
// @Summary Current branding settings
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Settings()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// UpdateAsset godoc
// @Summary Set or clear one branding image
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateAssetRequest true "Asset key and data"
// @Success 200 {object} response.Envelope
// @Router /settings [put]
func (h *SettingsHandler) UpdateAsset(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid settings payload"))
		return
	}
	settings, err := h.service.UpdateAsset(c.Request.Context(), req.Key, req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// Usage godoc
// @Summary Local store usage against quota
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/usage [get]
func (h *SettingsHandler) Usage(c *gin.Context) {
	usage, err := h.service.Usage(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, usage, nil)
}
