package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/service"
	"turnusplan/backend/pkg/response"
)

// OrgHandler handles municipality and department endpoints.
type OrgHandler struct {
	orgSvc service.OrgService
}

// NewOrgHandler creates the OrgHandler.
func NewOrgHandler(orgSvc service.OrgService) *OrgHandler {
	return &OrgHandler{orgSvc: orgSvc}
}

// CreateMunicipality creates a municipality.
// POST /api/municipalities
func (h *OrgHandler) CreateMunicipality(c *gin.Context) {
	var req dto.CreateMunicipalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.orgSvc.CreateMunicipality(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListMunicipalities lists all municipalities.
// GET /api/municipalities
func (h *OrgHandler) ListMunicipalities(c *gin.Context) {
	result, err := h.orgSvc.ListMunicipalities(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateDepartment creates a department.
// POST /api/departments
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.orgSvc.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMunicipalityNotFound) {
			response.NotFound(c, 12001, "municipality not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListDepartments lists departments, optionally filtered by municipality.
// GET /api/departments
func (h *OrgHandler) ListDepartments(c *gin.Context) {
	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	result, err := h.orgSvc.ListDepartments(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
