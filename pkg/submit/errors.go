package submit

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HTTPError is returned when the service answers with a non-2xx status.
// MessageCode and Message are filled when the body carried the service's
// error envelope.
type HTTPError struct {
	StatusCode  int
	StatusText  string
	MessageCode string
	Message     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("The endpoint returned an error: %d %s", e.StatusCode, e.StatusText)
}

// TransportError means the request never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means a 2xx body was not JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON in response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means a 2xx body was JSON but not the expected shape.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return "unexpected response shape: " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// statusText strips the numeric prefix from a response status line.
func statusText(code int, status string) string {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}
