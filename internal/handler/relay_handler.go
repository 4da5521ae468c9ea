package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/service"
	"github.com/ibdaa-school/docgen-api/pkg/response"
)

type relayService interface {
	BuildHandoff() (service.RelayHandoff, error)
}

// RelayHandler builds messaging handoffs for the active draft.
type RelayHandler struct {
	service relayService
}

// NewRelayHandler constructs the handler.
func NewRelayHandler(service relayService) *RelayHandler {
	return &RelayHandler{service: service}
}

// WhatsApp godoc
// @Summary Build the WhatsApp deep-link handoff for the guardian
// @Description The returned notice must be shown to the operator; the file
// @Description itself cannot be attached through the link.
// @Tags Relay
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /relay/whatsapp [post]
func (h *RelayHandler) WhatsApp(c *gin.Context) {
	handoff, err := h.service.BuildHandoff()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, handoff, nil)
}
