package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrPathParamCount     = errors.New("path parameter count does not match template")
	ErrUnknownQueryParam  = errors.New("query parameter not declared by endpoint")
	ErrUnsupportedMethod  = errors.New("unsupported HTTP method")
	ErrNilTransport       = errors.New("transport is required")
	ErrUnexpectedResponse = errors.New("unexpected empty response")
)

// TransportError is returned when a request could not be completed or the
// remote answered with a non-2xx status. StatusCode is zero when no response
// was received at all.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}

	if len(e.Body) > 0 {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), truncate(e.Body))
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError is returned when a request body cannot be encoded or a
// response body cannot be decoded into the requested type.
type SerializationError struct {
	// Op is either "encode" or "decode".
	Op   string
	Type string
	Err  error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Type, e.Err)
}

// Unwrap returns the underlying json error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by a TransportError in the chain,
// or zero.
func StatusCode(err error) int {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}

	return 0
}

// IsNotFound reports whether err is a TransportError with status 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a TransportError with status 401.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsSerialization reports whether err is a SerializationError.
func IsSerialization(err error) bool {
	serErr := &SerializationError{}

	return errors.As(err, &serErr)
}

const maxErrorBody = 512

func truncate(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}

	return string(body[:maxErrorBody]) + "..."
}
