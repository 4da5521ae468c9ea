package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibdaa-school/docgen-api/internal/service"
)

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	loaded  func() bool
}

// NewMetricsHandler constructs a metrics handler. The loaded probe feeds the
// readiness endpoint.
func NewMetricsHandler(metrics *service.MetricsService, loaded func() bool) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, loaded: loaded}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports 200 only once the workspace collections are hydrated.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.loaded != nil && !h.loaded() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
