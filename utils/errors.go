package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindServiceUnavailable
	KindUpstream
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindUpstream:
		return "upstream"
	case KindStore:
		return "store"
	default:
		return "internal"
	}
}

// AppError is the error type returned by services.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *AppError) Unwrap() error { return e.Err }

// ValidationError reports bad or missing caller input.
func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

// ServiceUnavailableError reports a required external credential that was never configured.
func ServiceUnavailableError(message string) error {
	return &AppError{Kind: KindServiceUnavailable, Message: message}
}

// UpstreamError wraps a failed call to the LLM API.
func UpstreamError(err error) error {
	return &AppError{Kind: KindUpstream, Err: err}
}

// StoreError wraps a failed document store operation.
func StoreError(err error) error {
	return &AppError{Kind: KindStore, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusFor maps an error to the HTTP status the API responds with.
func StatusFor(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
