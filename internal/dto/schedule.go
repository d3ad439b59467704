package dto

import "turnusplan/backend/internal/model"

// GenerateScheduleRequest asks for a month's roster for a department.
type GenerateScheduleRequest struct {
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Year         int    `json:"year"          binding:"required,min=2000,max=2100"`
	Month        int    `json:"month"         binding:"required,min=1,max=12"`
}

// GenerateScheduleResponse returns the persisted roster.
type GenerateScheduleResponse struct {
	ID          string                  `json:"id"`
	Assignments []model.DailyAssignment `json:"assignments"`
}

// ScheduleResponse is a stored schedule.
type ScheduleResponse struct {
	ID           string                  `json:"id"`
	DepartmentID string                  `json:"department_id"`
	Year         int                     `json:"year"`
	Month        int                     `json:"month"`
	Status       string                  `json:"status"`
	Assignments  []model.DailyAssignment `json:"assignments"`
	Notes        string                  `json:"notes,omitempty"`
	CreatedAt    string                  `json:"created_at"`
}
