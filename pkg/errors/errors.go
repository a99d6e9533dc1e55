package errors

import "net/http"

// HTTPError is an error that carries the HTTP status code it should be
// rendered with. All boundary-facing errors in this service are HTTPErrors;
// anything else reaching the response layer is treated as a 500.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with an explicit status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

// NewBadRequest creates a 400 error for malformed client input.
func NewBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}

// NewInternalServerError creates a 500 error.
func NewInternalServerError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}
