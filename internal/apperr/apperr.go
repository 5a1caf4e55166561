// Package apperr contains the domain error taxonomy shared by services and
// the HTTP layer.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error
type Kind int

const (
	// Internal is the zero value so that unclassified errors never leak as 4xx
	Internal Kind = iota
	InvalidArgument
	Unauthorized
	Forbidden
	NotFound
	Conflict
)

// String returns a stable name of the kind
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case InvalidArgument:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error: stable message, kind (numeric code), optional cause
// and the place it was raised for diagnostics.
type Error struct {
	Cause   error
	Message string
	Origin  string
	Kind    Kind
}

// New creates a domain error without a cause
func New(kind Kind, message, origin string) *Error {
	return &Error{Kind: kind, Message: message, Origin: origin}
}

// Wrap creates a domain error around a lower level cause
func Wrap(kind Kind, message string, cause error, origin string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause, Origin: origin}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// Code returns the numeric (HTTP) code of the error
func (e *Error) Code() int {
	return e.Kind.Status()
}

// As returns the first *Error in the chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, Internal for anything that is not a domain error
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return Internal
}

// IsKind reports whether err is a domain error of the given kind
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// HTTPStatus maps any error to a response status code
func HTTPStatus(err error) int {
	return KindOf(err).Status()
}
