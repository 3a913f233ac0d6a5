package ai

import (
	"context"
	"fmt"
	"time"

	"smartresume/config"
)

// NewCompleter builds the client for provider. It returns a nil Completer and no error
// when apiKey is empty, leaving the suggestion service unconfigured.
func NewCompleter(ctx context.Context, provider, apiKey, baseURL string, timeout time.Duration) (Completer, error) {
	if apiKey == "" {
		return nil, nil
	}
	switch provider {
	case config.ProviderOpenAI:
		client, err := NewOpenAIClient(apiKey, baseURL, timeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, apiKey, timeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", provider)
	}
}
