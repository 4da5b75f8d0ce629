package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application-level error carried from services and
// controllers up to the HTTP layer, where Status decides the response code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches two errors by code so sentinel comparisons work with
// wrapped or re-created errors.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: "VALIDATION", Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: "NOT_FOUND", Message: fmt.Sprintf(format, args...), Status: http.StatusNotFound}
}

// Duplicate keeps the original wire behavior of answering duplicate
// registrations with a 400 rather than a 409.
func Duplicate(format string, args ...any) *Error {
	return &Error{Code: "DUPLICATE", Message: fmt.Sprintf(format, args...), Status: http.StatusBadRequest}
}

func Auth(format string, args ...any) *Error {
	return &Error{Code: "AUTH", Message: fmt.Sprintf(format, args...), Status: http.StatusUnauthorized}
}

// Upstream marks a notification relay failure. It is logged by callers
// and never surfaced to the client as a request failure.
func Upstream(format string, args ...any) *Error {
	return &Error{Code: "UPSTREAM", Message: fmt.Sprintf(format, args...), Status: http.StatusBadGateway}
}

// Sentinels for errors.Is checks.
var (
	ErrValidation = &Error{Code: "VALIDATION"}
	ErrNotFound   = &Error{Code: "NOT_FOUND"}
	ErrDuplicate  = &Error{Code: "DUPLICATE"}
	ErrAuth       = &Error{Code: "AUTH"}
	ErrUpstream   = &Error{Code: "UPSTREAM"}
)

// StatusOf maps any error to an HTTP status, falling back to 500 for
// errors that did not originate in this package.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}
