package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signsheet/internal/domain"
	"signsheet/internal/port"
)

// readinessSample is a minimal sheet the parser must accept before traffic is served.
const readinessSample = "SIGN IN SHEET 01/02/2024\nNAMES\n1\nReady Check\n08:00\n17:00"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	parser port.SheetParser
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(parser port.SheetParser) *HealthHandler {
	return &HealthHandler{parser: parser}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	result, err := h.parser.ParseWithFormat(readinessSample, 1, domain.DateFormatUS)
	if err != nil || len(result.Records) != 1 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "parser self-check failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
