package model

// Municipality maps the municipalities table.
type Municipality struct {
	MunicipalityID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"municipality_id"`
	Name           string `gorm:"type:varchar(100);not null"                     json:"name"`
	Description    string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Municipality) TableName() string { return "municipalities" }
