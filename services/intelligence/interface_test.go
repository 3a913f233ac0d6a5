package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartresume/config"
	"smartresume/models"
	"smartresume/utils"

	"go.uber.org/zap"
)

type fakeCompleter struct {
	resp  *Response
	err   error
	calls int
	last  CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (*Response, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func newTestService(c Completer) *DefaultSuggestionService {
	return NewDefaultSuggestionService(c, Options{Provider: config.ProviderOpenAI}, zap.NewNop())
}

func TestGenerateSuggestionTrimsFlatText(t *testing.T) {
	fake := &fakeCompleter{resp: &Response{OutputText: "  Led a team of five engineers.\n"}}
	svc := newTestService(fake)

	got, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: "led team"})
	if err != nil {
		t.Fatalf("GenerateSuggestion: %v", err)
	}
	if got != "Led a team of five engineers." {
		t.Fatalf("unexpected suggestion %q", got)
	}
	if fake.last.Model != DefaultOpenAIModel || fake.last.MaxOutputTokens != 500 {
		t.Fatalf("unexpected request %+v", fake.last)
	}
}

func TestGenerateSuggestionPromptDefaults(t *testing.T) {
	fake := &fakeCompleter{resp: &Response{OutputText: "ok"}}
	svc := newTestService(fake)

	text := "Built <b>APIs</b> in Go"
	if _, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: text}); err != nil {
		t.Fatalf("GenerateSuggestion: %v", err)
	}
	prompt := fake.last.Prompt
	for _, want := range []string{"in a Professional tone", "improving the General section", "Resume Text:\n" + text} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateSuggestionRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		fake := &fakeCompleter{resp: &Response{OutputText: "never"}}
		svc := newTestService(fake)

		_, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: text})
		if utils.KindOf(err) != utils.KindValidation {
			t.Fatalf("text %q: expected validation error, got %v", text, err)
		}
		if fake.calls != 0 {
			t.Fatalf("text %q: upstream must not be called", text)
		}
	}
}

func TestGenerateSuggestionUnconfigured(t *testing.T) {
	svc := newTestService(nil)
	if svc.Configured() {
		t.Fatalf("expected unconfigured service")
	}
	_, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: "resume"})
	if utils.KindOf(err) != utils.KindServiceUnavailable {
		t.Fatalf("expected service unavailable error, got %v", err)
	}
}

func TestGenerateSuggestionUpstreamError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("429 You exceeded your current quota")}
	svc := newTestService(fake)

	_, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: "resume"})
	if utils.KindOf(err) != utils.KindUpstream {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if err.Error() != "429 You exceeded your current quota" {
		t.Fatalf("expected upstream message to pass through, got %q", err.Error())
	}
}

func TestGenerateSuggestionPlaceholder(t *testing.T) {
	svc := newTestService(&fakeCompleter{resp: &Response{}})
	got, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: "resume"})
	if err != nil {
		t.Fatalf("GenerateSuggestion: %v", err)
	}
	if got != strings.TrimSpace(NoSuggestion) {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestGenerateSuggestionThrottleHonoursContext(t *testing.T) {
	fake := &fakeCompleter{resp: &Response{OutputText: "ok"}}
	svc := NewDefaultSuggestionService(fake, Options{Provider: config.ProviderOpenAI, MaxRequestsPerMin: 1}, zap.NewNop())

	if _, err := svc.GenerateSuggestion(context.Background(), models.SuggestionRequest{Text: "one"}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.GenerateSuggestion(ctx, models.SuggestionRequest{Text: "two"})
	if utils.KindOf(err) != utils.KindUpstream {
		t.Fatalf("expected throttled call to fail as upstream error, got %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", fake.calls)
	}
}

func TestNewCompleterWithoutKey(t *testing.T) {
	c, err := NewCompleter(context.Background(), config.ProviderOpenAI, "", "", 0)
	if err != nil || c != nil {
		t.Fatalf("expected nil completer without key, got %v, %v", c, err)
	}
	if _, err := NewCompleter(context.Background(), "claude", "key", "", 0); err == nil {
		t.Fatalf("expected unsupported provider error")
	}
}
