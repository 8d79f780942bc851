// Package apperr defines the error taxonomy shared by handlers and services.
// Every failure that crosses a package boundary is tagged with a Kind so the
// HTTP layer can map it to a status code without probing error shapes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "ValidationError"
	KindBadRequest     Kind = "BadRequest"
	KindNotFound       Kind = "NotFound"
	KindAuthentication Kind = "AuthenticationError"
	KindInternal       Kind = "InternalServerError"
)

// Issue points at a single offending field, path in dotted form
// (e.g. "contact_details.email").
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Issues  []Issue
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Validation builds a ValidationError carrying the ordered issue list
// produced by the schema layer.
func Validation(issues []Issue) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Invalid request payload",
		Issues:  issues,
	}
}

// Internal wraps any unexpected failure. The message defaults to
// "Failed to <context>" when the cause carries no message of its own.
func Internal(context string, cause error) *Error {
	msg := "Failed to " + context
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// From extracts a tagged error from err, wrapping unknown errors as
// InternalServerError with the given context.
func From(err error, context string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(context, err)
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindBadRequest, KindAuthentication:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
