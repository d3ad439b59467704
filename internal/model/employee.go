package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// HardRules are the boolean constraints the rotation must never violate.
// Named fields instead of a loose key-value map so lookups are typed.
type HardRules struct {
	NoNight              bool `json:"no_night,omitempty"`
	NoAfterSixteenFriday bool `json:"no_after_16_friday,omitempty"`
}

// Scan parses JSONB bytes.
func (r *HardRules) Scan(src interface{}) error {
	return scanJSON(src, r, "HardRules")
}

// Value serializes the rules as JSONB.
func (r HardRules) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// SoftPreferences map preference names to weights. Modeled but not consulted
// by roster generation; reserved for future weighting rules.
type SoftPreferences map[string]float64

// Scan parses JSONB bytes.
func (p *SoftPreferences) Scan(src interface{}) error {
	return scanJSON(src, p, "SoftPreferences")
}

// Value serializes the preferences as JSONB.
func (p SoftPreferences) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	return json.Marshal(p)
}

// AbsencePeriod is one date range an employee is away.
type AbsencePeriod struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason,omitempty"`
}

// AbsencePeriods maps a JSONB column to a list of absence periods.
// Modeled but not consulted by roster generation.
type AbsencePeriods []AbsencePeriod

// Scan parses JSONB bytes.
func (a *AbsencePeriods) Scan(src interface{}) error {
	return scanJSON(src, a, "AbsencePeriods")
}

// Value serializes the periods as JSONB.
func (a AbsencePeriods) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

func scanJSON(src, dst interface{}, name string) error {
	if src == nil {
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("%s.Scan: unsupported type %T", name, src)
	}
	return json.Unmarshal(b, dst)
}

// Employee maps the employees table.
type Employee struct {
	EmployeeID         string          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	DepartmentID       string          `gorm:"type:uuid;not null"                             json:"department_id"`
	Name               string          `gorm:"type:varchar(100);not null"                     json:"name"`
	ContractPercentage int             `gorm:"type:smallint;not null"                         json:"contract_percentage"`
	PreferencesText    string          `gorm:"type:text"                                      json:"preferences_text,omitempty"`
	HardRules          HardRules       `gorm:"type:jsonb;not null;default:'{}'"               json:"hard_rules"`
	SoftPreferences    SoftPreferences `gorm:"type:jsonb;not null;default:'{}'"               json:"soft_preferences"`
	Absences           AbsencePeriods  `gorm:"type:jsonb;not null;default:'[]'"               json:"absences"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName sets the table name.
func (Employee) TableName() string { return "employees" }
