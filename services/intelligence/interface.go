// Package ai turns resume text into a rewritten suggestion using a hosted LLM.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartresume/metrics"
	"smartresume/models"
	"smartresume/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// CompletionRequest is one synchronous call to the LLM API.
type CompletionRequest struct {
	Model           string
	Prompt          string
	MaxOutputTokens int
}

// Completer sends a prompt upstream and returns the decoded reply.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*Response, error)
}

// SuggestionService produces a rewritten resume suggestion.
type SuggestionService interface {
	GenerateSuggestion(ctx context.Context, req models.SuggestionRequest) (string, error)
}

// DefaultSuggestionService implements SuggestionService over a Completer.
// A nil Completer means the provider credential was never configured.
type DefaultSuggestionService struct {
	completer Completer
	provider  string
	model     string
	maxTokens int
	throttle  *rate.Limiter
	logger    *zap.Logger
}

// Options configures NewDefaultSuggestionService.
type Options struct {
	Provider        string
	Model           string
	MaxOutputTokens int
	// MaxRequestsPerMin throttles upstream calls; zero or less disables throttling.
	MaxRequestsPerMin int
}

func NewDefaultSuggestionService(completer Completer, opts Options, logger *zap.Logger) *DefaultSuggestionService {
	s := &DefaultSuggestionService{
		completer: completer,
		provider:  opts.Provider,
		model:     opts.Model,
		maxTokens: opts.MaxOutputTokens,
		logger:    logger,
	}
	if s.model == "" {
		s.model = DefaultModel(opts.Provider)
	}
	if s.maxTokens <= 0 {
		s.maxTokens = DefaultMaxOutputTokens
	}
	if opts.MaxRequestsPerMin > 0 {
		s.throttle = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.MaxRequestsPerMin)), opts.MaxRequestsPerMin)
	}
	return s
}

// Configured reports whether an upstream client is available.
func (s *DefaultSuggestionService) Configured() bool {
	return s.completer != nil
}

// GenerateSuggestion validates the request, calls the LLM once, and extracts the text.
func (s *DefaultSuggestionService) GenerateSuggestion(ctx context.Context, req models.SuggestionRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		metrics.ObserveSuggestion("invalid")
		return "", utils.ValidationError("Missing resume text")
	}
	if s.completer == nil {
		metrics.ObserveSuggestion("unconfigured")
		return "", utils.ServiceUnavailableError("AI service not configured")
	}
	req = req.WithDefaults()

	if s.throttle != nil {
		if err := s.throttle.Wait(ctx); err != nil {
			metrics.ObserveSuggestion("throttled")
			return "", utils.UpstreamError(fmt.Errorf("AI request throttled: %w", err))
		}
	}

	start := time.Now()
	resp, err := s.completer.Complete(ctx, CompletionRequest{
		Model:           s.model,
		Prompt:          BuildPrompt(req),
		MaxOutputTokens: s.maxTokens,
	})
	metrics.ObserveUpstream(s.provider, time.Since(start))
	if err != nil {
		metrics.ObserveSuggestion("upstream_error")
		s.logger.Error("Generate error", zap.String("provider", s.provider), zap.Error(err))
		return "", utils.UpstreamError(err)
	}

	suggestion, source := Extract(resp)
	metrics.ObserveSuggestion(source)
	s.logger.Debug("Suggestion generated",
		zap.String("provider", s.provider),
		zap.String("model", s.model),
		zap.String("source", source),
		zap.Duration("took", time.Since(start)),
	)
	return strings.TrimSpace(suggestion), nil
}
