package controller

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// AuthenticationError reports a login the controller rejected. Status
// and Body are taken from the login response so callers can relay them.
type AuthenticationError struct {
	Status int
	Body   string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("controller rejected login (status %d)", e.Status)
}

// UnsupportedQueryError reports a query name missing from the catalog.
type UnsupportedQueryError struct {
	Name string
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("unsupported query %q", e.Name)
}

// APIError reports a controller failure envelope. Message carries the
// controller's meta.msg code when the envelope included one.
type APIError struct {
	Status  int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("controller API error (status %d)", e.Status)
	}
	return fmt.Sprintf("controller API error (status %d): %s", e.Status, e.Message)
}

// TransportError reports a failed HTTP exchange or a response body
// that is not a controller envelope. Status is zero when no response
// was received.
type TransportError struct {
	Status int
	Body   string
	cause  error
}

func (e *TransportError) Error() string {
	switch {
	case e.cause != nil:
		return fmt.Sprintf("controller request failed: %v", e.cause)
	case e.Status != 0:
		return fmt.Sprintf("controller returned an unrecognizable response (status %d)", e.Status)
	default:
		return "controller returned an unrecognizable response"
	}
}

func (e *TransportError) Unwrap() error {
	return e.cause
}

// errorType names the error taxonomy for metrics labels.
func errorType(err error) string {
	var (
		authErr      *AuthenticationError
		queryErr     *UnsupportedQueryError
		apiErr       *APIError
		transportErr *TransportError
	)

	switch {
	case errors.As(err, &authErr):
		return "authentication"
	case errors.As(err, &queryErr):
		return "unsupported_query"
	case errors.As(err, &apiErr):
		return "api"
	case errors.As(err, &transportErr):
		return "transport"
	default:
		return "unknown"
	}
}
