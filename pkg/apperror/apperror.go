package apperror

import (
	"errors"
	"net/http"
)

// AppError is the error type handlers and repositories exchange. Message is
// safe to show to clients; Err keeps the underlying cause for server-side
// logging only.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// IsNotFound reports whether err is an AppError with a 404 code.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// IsClientError reports whether err is an AppError the client caused
// (any 4xx). Used by handlers to decide between passing an error through
// and replacing it with an endpoint-specific generic 500.
func IsClientError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500
}
