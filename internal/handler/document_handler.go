package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/compose"
	"github.com/ibdaa-school/docgen-api/internal/models"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type previewService interface {
	Preview(ctx context.Context) (compose.Document, error)
	PreviewVariant(ctx context.Context, variant models.DocumentVariant) (compose.Document, error)
}

// DocumentHandler serves composed document trees.
type DocumentHandler struct {
	service previewService
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(service previewService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Preview godoc
// @Summary Compose the active draft into the requested variant
// @Description An unknown variant returns the not-found placeholder document.
// @Tags Documents
// @Produce json
// @Param variant path string true "Document variant"
// @Success 200 {object} response.Envelope
// @Router /documents/{variant}/preview [get]
func (h *DocumentHandler) Preview(c *gin.Context) {
	doc, err := h.service.PreviewVariant(c.Request.Context(), models.DocumentVariant(c.Param("variant")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// PreviewActive godoc
// @Summary Compose the active draft into its current variant
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workspace/preview [get]
func (h *DocumentHandler) PreviewActive(c *gin.Context) {
	doc, err := h.service.Preview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}
