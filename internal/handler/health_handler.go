package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"degenlauncher/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	imageService service.ImageService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(imageService service.ImageService) *HealthHandler {
	return &HealthHandler{imageService: imageService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz and reports the upload strategy chain.
func (h *HealthHandler) Readiness(c *gin.Context) {
	strategies := h.imageService.Strategies()
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = string(s)
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Providers: names})
}
