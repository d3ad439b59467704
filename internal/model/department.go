package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap maps a JSONB column to a generic key-value map.
type JSONMap map[string]interface{}

// Scan parses JSONB bytes.
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("JSONMap.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, m)
}

// Value serializes the map as JSONB.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Department maps the departments table.
type Department struct {
	DepartmentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	MunicipalityID string  `gorm:"type:uuid;not null"                             json:"municipality_id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	LeaderUserID   *string `gorm:"type:uuid"                                      json:"leader_user_id,omitempty"`
	Settings       JSONMap `gorm:"type:jsonb;not null;default:'{}'"               json:"settings,omitempty"`
	BaseModel

	Municipality *Municipality `gorm:"foreignKey:MunicipalityID;references:MunicipalityID" json:"municipality,omitempty"`
}

// TableName sets the table name.
func (Department) TableName() string { return "departments" }
