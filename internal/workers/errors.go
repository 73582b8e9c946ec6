package workers

import (
	"errors"
	"net/http"
)

// Domain errors for worker operations.
var (
	ErrNotFound           = errors.New("worker not found")
	ErrDuplicate          = errors.New("worker already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapHTTPStatus maps worker domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
