// Package apperr defines the closed set of failures the API reports to callers.
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies a class of failure
type Kind int

const (
	KindInternal        Kind = iota // Unrecognized failure
	KindBadRequest                  // Validation failure
	KindUnauthenticated             // Missing or invalid credentials
	KindForbidden                   // Authenticated but not allowed
	KindNotFound                    // Target row does not exist
	KindConflict                    // Duplicate unique field
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// StatusCode maps a kind to its HTTP status
func (k Kind) StatusCode() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed failure carrying its kind and a caller-facing message.
// Detail is optional extra payload rendered in the envelope's error field.
type Error struct {
	Kind    Kind
	Message string
	Detail  any
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status for the error
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

// New creates an Error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// BadRequest reports a validation failure
func BadRequest(message string) *Error {
	if message == "" {
		message = "Bad Request."
	}
	return New(KindBadRequest, message)
}

// Unauthenticated reports missing or invalid credentials
func Unauthenticated(message string) *Error {
	if message == "" {
		message = "Unauthorized Access."
	}
	return New(KindUnauthenticated, message)
}

// Forbidden reports an operation the caller is not allowed to perform
func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden Access."
	}
	return New(KindForbidden, message)
}

// NotFound reports a missing row
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found."
	}
	return New(KindNotFound, message)
}

// AlreadyExists reports a duplicate of the named resource, e.g. "Email already exists."
func AlreadyExists(resource string) *Error {
	if resource == "" {
		resource = "Resource"
	}
	return New(KindConflict, resource+" already exists.")
}

// Conflict reports a duplicate with a custom message
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// Internal wraps an unrecognized failure. The cause is kept as Detail so the
// boundary handler can decide whether to expose it.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error.", Detail: cause}
}

// From classifies any error. Errors that are not an *Error become Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err is an *Error of the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
