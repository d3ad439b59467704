package dto

// ── municipality DTOs ──

// CreateMunicipalityRequest creates a municipality.
type CreateMunicipalityRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// MunicipalityResponse is one municipality in list responses.
type MunicipalityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ── department DTOs ──

// CreateDepartmentRequest creates a department under a municipality.
type CreateDepartmentRequest struct {
	MunicipalityID string `json:"municipality_id" binding:"required,uuid"`
	Name           string `json:"name"            binding:"required,min=2,max=100"`
}

// DepartmentListRequest filters the department list.
type DepartmentListRequest struct {
	MunicipalityID string `form:"municipality_id" binding:"omitempty,uuid"`
}

// DepartmentResponse is one department in list responses.
type DepartmentResponse struct {
	ID             string `json:"id"`
	MunicipalityID string `json:"municipality_id"`
	Name           string `json:"name"`
}

// CreatedResponse carries the identifier of a newly created entity.
type CreatedResponse struct {
	ID string `json:"id"`
}
