package model

import (
	"database/sql/driver"
	"encoding/json"
)

// Shift is one of the four shift codes assigned to an employee on a date.
type Shift string

const (
	ShiftDay     Shift = "D"
	ShiftEvening Shift = "E"
	ShiftNight   Shift = "N"
	ShiftOff     Shift = "OFF"
)

// Schedule statuses.
const (
	ScheduleStatusActive     = "active"
	ScheduleStatusSuperseded = "superseded"
)

// DailyAssignment is one (date, employee, shift) cell of a roster.
// Date is an ISO yyyy-mm-dd string so stored assignment lists are byte-stable.
type DailyAssignment struct {
	Date       string `json:"date"`
	EmployeeID string `json:"employee_id"`
	Shift      Shift  `json:"shift"`
	Holiday    bool   `json:"holiday,omitempty"`
}

// DailyAssignments maps a JSONB column to the ordered assignment list.
type DailyAssignments []DailyAssignment

// Scan parses JSONB bytes.
func (a *DailyAssignments) Scan(src interface{}) error {
	return scanJSON(src, a, "DailyAssignments")
}

// Value serializes the assignments as JSONB.
func (a DailyAssignments) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Schedule maps the schedules table. One record per generation call;
// regeneration supersedes the previous active record for the same
// department and month instead of duplicating it.
type Schedule struct {
	ScheduleID   string           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	DepartmentID string           `gorm:"type:uuid;not null"                             json:"department_id"`
	Year         int              `gorm:"type:smallint;not null"                         json:"year"`
	Month        int              `gorm:"type:smallint;not null"                         json:"month"`
	Status       string           `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	Assignments  DailyAssignments `gorm:"type:jsonb;not null;default:'[]'"               json:"assignments"`
	Notes        string           `gorm:"type:text"                                      json:"notes,omitempty"`
	Version      int              `gorm:"not null;default:1"                             json:"version"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName sets the table name.
func (Schedule) TableName() string { return "schedules" }
