package client

import (
	"fmt"
	"net/http"
)

// NetworkError reports a transport failure before any response was
// received.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a response with a status outside [200,299]. The
// body is not inspected; all non-2xx responses are treated uniformly.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.Status, e.URL)
}

// IsNotFound reports whether the error is a 404, which detail views
// present as a distinct not-found state instead of a generic error.
func (e *HTTPError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// ParseError reports a response body that is not valid JSON or does
// not match the expected shape.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports invalid user input caught before submission,
// e.g. a non-numeric adjustment value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
