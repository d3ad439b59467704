package service

import (
	"strings"

	"turnusplan/backend/internal/dto"
	"turnusplan/backend/internal/model"
)

// InterpretService turns free-text preference statements into the structured
// hard/soft rules consumed by roster generation. A static substring table in
// English and Norwegian; no negation handling, no language detection.
type InterpretService interface {
	Interpret(text string) *dto.InterpretResponse
	// InterpretRules returns the typed rule structures stored on employees.
	InterpretRules(text string) (model.HardRules, model.SoftPreferences)
}

type interpretService struct{}

// NewInterpretService creates the keyword-table interpreter.
func NewInterpretService() InterpretService {
	return &interpretService{}
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func (s *interpretService) InterpretRules(text string) (model.HardRules, model.SoftPreferences) {
	text = strings.ToLower(text)

	var hard model.HardRules
	soft := model.SoftPreferences{}

	if containsAny(text, "never night", "avoid night", "ikke natt") {
		hard.NoNight = true
	}
	if containsAny(text, "prefer day", "day shifts", "dagvakt") {
		soft["prefer_day"] = 1.0
	}
	if containsAny(text, "prefer evening", "kveld") {
		soft["prefer_evening"] = 1.0
	}
	if containsAny(text, "cannot work after 16", "ikke etter 16") {
		hard.NoAfterSixteenFriday = true
	}

	return hard, soft
}

func (s *interpretService) Interpret(text string) *dto.InterpretResponse {
	hard, soft := s.InterpretRules(text)

	resp := &dto.InterpretResponse{
		HardRules:       make(map[string]bool),
		SoftPreferences: map[string]float64(soft),
	}
	if hard.NoNight {
		resp.HardRules["no_night"] = true
	}
	if hard.NoAfterSixteenFriday {
		resp.HardRules["no_after_16_friday"] = true
	}

	return resp
}
