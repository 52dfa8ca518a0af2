package api

import (
	"net/http"

	"github.com/pkg/errors"
)

// genericDetail is surfaced when the server gave no usable message.
const genericDetail = "something went wrong, please try again"

// Error is a structured failure from the attendance server: an HTTP-like
// status plus the server's detail message when it gave one.
type Error struct {
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return genericDetail
}

// StatusOf extracts the status code from a gateway error, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
