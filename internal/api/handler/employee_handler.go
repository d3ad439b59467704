package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/service"
	"turnusplan/backend/pkg/response"
)

// EmployeeHandler handles the employee endpoints.
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler creates the EmployeeHandler.
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// Create creates an employee.
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// ListByDepartment lists a department's employees. The :id segment on this
// route is the department id.
// GET /api/employees/:id
func (h *EmployeeHandler) ListByDepartment(c *gin.Context) {
	departmentID := c.Param("id")
	if departmentID == "" {
		response.BadRequest(c, 10001, "department id required")
		return
	}

	result, err := h.empSvc.ListByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdatePreferences re-interprets an employee's preference text.
// PUT /api/employees/:id/preferences
func (h *EmployeeHandler) UpdatePreferences(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "employee id required")
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.empSvc.UpdatePreferences(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// ImportAbsences parses an iCalendar payload into absence periods.
// POST /api/employees/:id/absences/import
func (h *EmployeeHandler) ImportAbsences(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "employee id required")
		return
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil || len(data) == 0 {
		response.BadRequest(c, 10001, "calendar body required")
		return
	}

	result, err := h.empSvc.ImportAbsences(c.Request.Context(), id, data)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// handleEmployeeError maps employee module errors to HTTP responses.
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 14001, "employee not found")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 12002, "department not found")
	case errors.Is(err, service.ErrInvalidCalendar):
		response.BadRequest(c, 14002, "invalid calendar file")
	default:
		response.InternalError(c)
	}
}
