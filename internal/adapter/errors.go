package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Status sentinels. A [*RequestError] unwraps to the one matching its status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrMalformedResponse is returned when a successful response carries a
	// body that is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrTransport wraps network-level failures: DNS, refused connections,
	// timeouts and cancelled contexts.
	ErrTransport = errors.New("transport error")

	// ErrInvalidBaseURL is returned by the constructor for unusable addresses.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// RequestError is returned for every non-2xx response.
type RequestError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the server-supplied message, or a generic fallback.
	Message string
	// Errors holds per-field validation messages, when the server sent any.
	Errors map[string][]string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the status sentinel for e.StatusCode.
func (e *RequestError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// FieldError returns the first validation message for field, or "".
func (e *RequestError) FieldError(field string) string {
	if msgs := e.Errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
