package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the envelope code and the HTTP status
// it should be rendered with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError. Codes inside the HTTP status range are
// also used as the response status; any other code is sent as 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := http.StatusBadRequest
	if code >= 100 && code <= 599 {
		status = code
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// NewHTTPErrorWithStatus creates an HTTPError with a domain code and an explicit status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}
