package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the machine-readable failure classification surfaced to
// callers. Only store_fault is worth retrying; the rest are permanent for
// the given request.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindStoreFault        ErrorKind = "store_fault"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NotFoundf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInputf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func InvalidTransitionf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func StoreFault(err error) *AppError {
	return &AppError{Kind: KindStoreFault, Message: "persistence failure", Err: err}
}

// KindOf classifies any error; unknown errors count as store faults.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFault
}

// HTTPStatus maps an error to the response code the handlers use.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindInvalidTransition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
