package handler

import (
	"github.com/gin-gonic/gin"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/service"
	"turnusplan/backend/pkg/response"
)

// SystemHandler handles the liveness and diagnostics endpoints.
type SystemHandler struct {
	diagSvc service.DiagnosticsService
}

// NewSystemHandler creates the SystemHandler.
func NewSystemHandler(diagSvc service.DiagnosticsService) *SystemHandler {
	return &SystemHandler{diagSvc: diagSvc}
}

// Root reports liveness.
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.OK(c, dto.LivenessResponse{Message: "Turnus Planner Backend Running"})
}

// Test reports store connectivity. Store errors are contained in the payload
// rather than failing the request.
// GET /test
func (h *SystemHandler) Test(c *gin.Context) {
	response.OK(c, h.diagSvc.Check(c.Request.Context()))
}
