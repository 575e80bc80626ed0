package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrHomeNotFound is returned when a home listing is not found.
	ErrHomeNotFound = errors.New("home not found")
	// ErrNoHomesFound is returned when a filtered search matches nothing.
	ErrNoHomesFound = errors.New("no homes found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the signup email is already registered.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidProductKey is returned when product key verification fails
	// for a privileged signup role.
	ErrInvalidProductKey = errors.New("invalid product key")
	// ErrForbidden is returned when a user acts on a listing they do not own.
	ErrForbidden = errors.New("forbidden")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrHomeNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "HOME_NOT_FOUND")
	case ErrNoHomesFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_HOMES_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidProductKey:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PRODUCT_KEY")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
