package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient calls Google Gemini and folds its candidates into a Response.
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGeminiClient dials Gemini with apiKey. A positive timeout bounds each Complete call.
func NewGeminiClient(ctx context.Context, apiKey string, timeout time.Duration) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, timeout: timeout}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (*Response, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	model := g.client.GenerativeModel(req.Model)
	model.SetMaxOutputTokens(int32(req.MaxOutputTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return fromGemini(resp), nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// fromGemini concatenates the text parts of the first candidate into OutputText.
func fromGemini(resp *genai.GenerateContentResponse) *Response {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &Response{}
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return &Response{OutputText: sb.String()}
}

var _ Completer = (*GeminiClient)(nil)
