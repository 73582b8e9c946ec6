package assessments

import (
	"errors"
	"net/http"
)

// Domain errors for assessment operations.
var (
	ErrNotFound    = errors.New("assessment not found")
	ErrDuplicate   = errors.New("assessment already exists")
	ErrNotScorable = errors.New("assessment could not be scored")
)

// MapHTTPStatus maps assessment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotScorable) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
