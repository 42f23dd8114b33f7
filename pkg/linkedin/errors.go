package linkedin

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAccessToken is returned when a request asks for bearer
// authentication but carries no access token.
var ErrMissingAccessToken = errors.New("access token is required for authenticated requests")

// ConfigError reports missing application credentials at construction time.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "linkedin: missing required configuration: " + strings.Join(e.Missing, ", ")
}

// ValidationError reports a missing or malformed argument to a domain method.
// It is always returned before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// TransportError wraps a failure of the underlying transport (connection
// refused, DNS, TLS, context cancellation). The original error is reachable
// with errors.Is and errors.As.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is returned for any status other than 200, 201 or 404.
type HTTPStatusError struct {
	StatusCode int
	Status     string // status text without the code, e.g. "Internal Server Error"
	Body       []byte
}

// Error renders "{code} {status}: {body}" with the raw body JSON-quoted.
func (e *HTTPStatusError) Error() string {
	quoted, _ := json.Marshal(string(e.Body))
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, quoted)
}

// ParseError is returned when a successful response body is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
