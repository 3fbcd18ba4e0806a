package backend

import (
	"encoding/json"
	"errors"
)

// FallbackMessage is surfaced when neither the response nor the transport
// provides a message.
const FallbackMessage = "An error occurred"

// Error is the single error type returned for failed API calls.
// StatusCode is zero when no response was received.
type Error struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transport reports whether the request failed before a response arrived.
func (e *Error) Transport() bool {
	return e.StatusCode == 0
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newError(method, path string, status int, body []byte, cause error) *Error {
	return &Error{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Message:    extractMessage(body, cause),
		Err:        cause,
	}
}

// extractMessage picks the body's top-level "message", then the cause's
// text, then FallbackMessage.
func extractMessage(body []byte, cause error) string {
	var payload struct {
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	if cause != nil && cause.Error() != "" {
		return cause.Error()
	}
	return FallbackMessage
}
