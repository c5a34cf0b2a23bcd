package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and error code the
// delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
