package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/service"
	"turnusplan/backend/pkg/response"
)

// ScheduleHandler handles the schedule endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
	exportSvc   service.ExportService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService, exportSvc service.ExportService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, exportSvc: exportSvc}
}

// Generate builds and stores a month's roster.
// POST /api/schedule/generate
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.scheduleSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoEmployees):
			response.BadRequest(c, 15001, "no employees in department")
		case errors.Is(err, service.ErrDepartmentNotFound):
			response.NotFound(c, 12002, "department not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Get returns the stored schedule for a department and month.
// GET /api/schedule/:department_id/:year/:month
func (h *ScheduleHandler) Get(c *gin.Context) {
	departmentID, year, month, ok := h.bindMonthParams(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.Get(c.Request.Context(), departmentID, year, month)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			response.NotFound(c, 15002, "schedule not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Export downloads the stored schedule as an Excel roster.
// GET /api/schedule/:department_id/:year/:month/export
func (h *ScheduleHandler) Export(c *gin.Context) {
	departmentID, year, month, ok := h.bindMonthParams(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), departmentID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoSchedule):
			response.NotFound(c, 15002, "schedule not found")
		case errors.Is(err, service.ErrExportGenerateFail):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// bindMonthParams parses the department/year/month path segments.
func (h *ScheduleHandler) bindMonthParams(c *gin.Context) (string, int, int, bool) {
	departmentID := c.Param("department_id")
	if departmentID == "" {
		response.BadRequest(c, 10001, "department id required")
		return "", 0, 0, false
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(c, 10001, "invalid year")
		return "", 0, 0, false
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(c, 10001, "invalid month")
		return "", 0, 0, false
	}

	return departmentID, year, month, true
}
