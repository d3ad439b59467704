package dto

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the login result.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// CurrentUserResponse describes the authenticated user.
type CurrentUserResponse struct {
	UserID          string   `json:"user_id"`
	Username        string   `json:"username"`
	Role            string   `json:"role"`
	MunicipalityIDs []string `json:"municipality_ids,omitempty"`
	DepartmentIDs   []string `json:"department_ids,omitempty"`
}
