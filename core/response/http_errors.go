package response

import (
	"errors"
	"net/http"
)

// HTTPError is an application error: it is raised deliberately by handlers or
// middleware and carries a message and an optional HTTP status.
// The dispatcher responds with Status (500 when zero) and {"error": Message}.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// NewHTTPError creates an application error with the given message and status.
// Zero status is reported as 500 Internal Server Error.
func NewHTTPError(message string, status int) HTTPError {
	return HTTPError{
		Status:  status,
		Message: message,
	}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error, defaulting to 500.
func (e HTTPError) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// AsHTTPError reports whether err is, or wraps, an application error.
// A nil *HTTPError is reported as ErrInternalServerError.
func AsHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	var ptr *HTTPError
	if errors.As(err, &ptr) {
		if ptr == nil {
			return ErrInternalServerError, true
		}
		return *ptr, true
	}
	return HTTPError{}, false
}

// Predefined application errors using http.StatusText for default messages.
var (
	ErrBadRequest            = newStatusError(http.StatusBadRequest)
	ErrUnauthorized          = newStatusError(http.StatusUnauthorized)
	ErrForbidden             = newStatusError(http.StatusForbidden)
	ErrNotFound              = newStatusError(http.StatusNotFound)
	ErrMethodNotAllowed      = newStatusError(http.StatusMethodNotAllowed)
	ErrConflict              = newStatusError(http.StatusConflict)
	ErrRequestEntityTooLarge = newStatusError(http.StatusRequestEntityTooLarge)
	ErrUnprocessableEntity   = newStatusError(http.StatusUnprocessableEntity)
	ErrTooManyRequests       = newStatusError(http.StatusTooManyRequests)
	ErrInternalServerError   = newStatusError(http.StatusInternalServerError)
	ErrServiceUnavailable    = newStatusError(http.StatusServiceUnavailable)
)

func newStatusError(status int) HTTPError {
	return HTTPError{Status: status, Message: http.StatusText(status)}
}
