package response

import "net/http"

// HTTPError is an error that knows its HTTP status and error code.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. The error code defaults to the status code.
func NewHTTPError(statusCode, code int, message string) *HTTPError {
	if code == 0 {
		code = statusCode
	}
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// ErrBadRequest wraps a binding or validation error.
func ErrBadRequest(err error) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, ValidationErrorCode, err.Error())
}
