package models

import "strings"

const (
	DefaultTone  = "Professional"
	DefaultFocus = "General"
)

// SuggestionRequest is the payload coming from the frontend into /api/generate.
type SuggestionRequest struct {
	Text  string `json:"text"`  // resume text to rewrite
	Tone  string `json:"tone"`  // e.g. "Professional", "Friendly"
	Focus string `json:"focus"` // section to improve, e.g. "Experience"
}

// WithDefaults fills tone and focus when the caller left them blank.
func (r SuggestionRequest) WithDefaults() SuggestionRequest {
	if strings.TrimSpace(r.Tone) == "" {
		r.Tone = DefaultTone
	}
	if strings.TrimSpace(r.Focus) == "" {
		r.Focus = DefaultFocus
	}
	return r
}

// SuggestionResponse is what the generate handler returns to the frontend.
type SuggestionResponse struct {
	OK         bool   `json:"ok"`
	Suggestion string `json:"suggestion"`
}
