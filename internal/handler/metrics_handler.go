package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/techclub-site/internal/service"
)

type readiness interface {
	Ready() bool
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	catalog readiness
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, catalog readiness) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, catalog: catalog}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether a catalog snapshot is being served.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.catalog == nil || !h.catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "catalog not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
