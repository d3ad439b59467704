package model

// User roles.
const (
	RoleMunicipalAdmin   = "municipal_admin"
	RoleDepartmentLeader = "department_leader"
)

// User maps the users table.
type User struct {
	UserID          string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"     json:"user_id"`
	Username        string      `gorm:"type:varchar(100);not null;uniqueIndex"             json:"username"`
	PasswordHash    string      `gorm:"type:varchar(255);not null"                         json:"-"`
	Role            string      `gorm:"type:varchar(30);not null;default:'department_leader'" json:"role"`
	MunicipalityIDs StringArray `gorm:"type:uuid[]"                                        json:"municipality_ids,omitempty"`
	DepartmentIDs   StringArray `gorm:"type:uuid[]"                                        json:"department_ids,omitempty"`
	IsActive        bool        `gorm:"not null;default:true"                              json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
