package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ValidationError("Missing resume text"), http.StatusBadRequest},
		{"unconfigured", ServiceUnavailableError("AI service not configured"), http.StatusInternalServerError},
		{"upstream", UpstreamError(errors.New("quota exceeded")), http.StatusInternalServerError},
		{"store", StoreError(errors.New("connection refused")), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("generate: %w", ValidationError("bad")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAppErrorKeepsCauseMessage(t *testing.T) {
	cause := errors.New("401 invalid api key")
	err := UpstreamError(cause)
	if err.Error() != "401 invalid api key" {
		t.Fatalf("expected cause message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if KindOf(err) != KindUpstream {
		t.Fatalf("expected upstream kind, got %s", KindOf(err))
	}
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.OK || body.Error == "" {
		t.Fatalf("expected error envelope, got %+v", body)
	}
}
