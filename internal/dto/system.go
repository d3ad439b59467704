package dto

// LivenessResponse is the GET / payload.
type LivenessResponse struct {
	Message string `json:"message"`
}

// StoreStatus reports one backing store's connectivity.
type StoreStatus struct {
	Status string   `json:"status"` // "connected" | "error" | "not_configured"
	Error  string   `json:"error,omitempty"`
	Tables []string `json:"tables,omitempty"`
}

// DiagnosticsResponse is the GET /test payload. Store errors are reported
// inside the payload instead of failing the request.
type DiagnosticsResponse struct {
	Backend  string      `json:"backend"`
	Database StoreStatus `json:"database"`
	Redis    StoreStatus `json:"redis"`
}
