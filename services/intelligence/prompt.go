package ai

import (
	"fmt"

	"smartresume/config"
	"smartresume/models"
)

const (
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-1.5-flash"
	DefaultMaxOutputTokens = 500
)

const promptTemplate = `
You are an expert resume writer.
Rewrite this resume text in a %s tone.
Focus on improving the %s section.
Make it sound concise, professional, and impactful.

Resume Text:
%s
`

// BuildPrompt places tone, focus, and text into the instruction as given.
func BuildPrompt(req models.SuggestionRequest) string {
	return fmt.Sprintf(promptTemplate, req.Tone, req.Focus, req.Text)
}

// DefaultModel returns the model used when LLM_MODEL is unset.
func DefaultModel(provider string) string {
	if provider == config.ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}
