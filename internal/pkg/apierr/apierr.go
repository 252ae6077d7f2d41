package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Taxonomy constructors. Every failure the entity services can produce maps
// onto one of these; anything else resolves to a plain 500.

// NotFound covers both true absence and rows owned by another caller, so a
// caller can never tell the two apart.
func NotFound(resource string) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf("%s not found", resource))
}

// Forbidden is a role denial. It is distinct from NotFound and is raised
// before any data access.
func Forbidden(err error) *Error {
	return New(http.StatusForbidden, "forbidden", err)
}

// Unauthenticated means the identity carrier was empty when a service ran.
// The auth middleware populates it on every protected route, so this is a
// wiring fault rather than a normal user error.
func Unauthenticated(err error) *Error {
	return New(http.StatusUnauthorized, "unauthorized", err)
}

// Conflict is a uniqueness violation, e.g. registering an email twice.
func Conflict(code string, err error) *Error {
	return New(http.StatusConflict, code, err)
}

// Invalid rejects input the outer validation layer let through, e.g. an
// unknown deal stage or a relation target that does not exist.
func Invalid(code string, err error) *Error {
	return New(http.StatusBadRequest, code, err)
}

// Resolve maps any error to an HTTP status and code for the response
// envelope.
func Resolve(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := ae.Code
		if code == "" {
			code = "internal_error"
		}
		return status, code
	}
	return http.StatusInternalServerError, "internal_error"
}
