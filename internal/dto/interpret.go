package dto

// InterpretRequest carries free-text preference statements.
type InterpretRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// InterpretResponse is the structured interpretation of preference text.
type InterpretResponse struct {
	HardRules       map[string]bool    `json:"hard_rules"`
	SoftPreferences map[string]float64 `json:"soft_preferences"`
}
