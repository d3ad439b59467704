package dto

import "turnusplan/backend/internal/model"

// CreateEmployeeRequest creates an employee in a department.
type CreateEmployeeRequest struct {
	DepartmentID       string `json:"department_id"       binding:"required,uuid"`
	Name               string `json:"name"                binding:"required,min=2,max=100"`
	ContractPercentage int    `json:"contract_percentage" binding:"required,min=1,max=200"`
	PreferencesText    string `json:"preferences_text"    binding:"omitempty,max=1000"`
}

// UpdatePreferencesRequest re-interprets an employee's preference text.
type UpdatePreferencesRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// EmployeeResponse is one employee in list and detail responses.
type EmployeeResponse struct {
	ID                 string                `json:"id"`
	DepartmentID       string                `json:"department_id"`
	Name               string                `json:"name"`
	ContractPercentage int                   `json:"contract_percentage"`
	PreferencesText    string                `json:"preferences_text,omitempty"`
	HardRules          model.HardRules       `json:"hard_rules"`
	SoftPreferences    model.SoftPreferences `json:"soft_preferences"`
	Absences           model.AbsencePeriods  `json:"absences"`
}

// ImportAbsencesResponse summarizes an ICS absence import.
type ImportAbsencesResponse struct {
	EmployeeID string               `json:"employee_id"`
	Imported   int                  `json:"imported"`
	Absences   model.AbsencePeriods `json:"absences"`
}
