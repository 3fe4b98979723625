package api

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrAccountNotFound = errors.New("account not found")

// APIError carries the transport-reported status and the best available
// message: the server-provided one when the error body parses, otherwise a
// fallback derived from the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrAccountNotFound
	}
	return nil
}

func newAPIError(statusCode int, serverMessage string) *APIError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("API error: %d %s", statusCode, http.StatusText(statusCode))
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

// Message extracts the displayable text from an error: the APIError message
// when the error came from the transport, the plain Error() text otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
