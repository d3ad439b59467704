package handler

import (
	"github.com/gin-gonic/gin"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/service"
	"turnusplan/backend/pkg/response"
)

// InterpretHandler handles the preference interpretation endpoint.
type InterpretHandler struct {
	interpretSvc service.InterpretService
}

// NewInterpretHandler creates the InterpretHandler.
func NewInterpretHandler(interpretSvc service.InterpretService) *InterpretHandler {
	return &InterpretHandler{interpretSvc: interpretSvc}
}

// Interpret turns free-text preferences into structured rules.
// POST /api/ai/interpret
func (h *InterpretHandler) Interpret(c *gin.Context) {
	var req dto.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	response.OK(c, h.interpretSvc.Interpret(req.Text))
}
