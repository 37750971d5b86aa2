// Package response provides the standardized HTTP response builders for the
// fare service API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the structured error payload returned by every failing
// endpoint.
type ErrorDetail struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details carries field-level validation errors when present.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeProxyRejected   = "proxy_rejected"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgProxyRejected      = "The ticket service rejected the request"
	MsgTimeout            = "Request timed out"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Accepted writes a 202 Accepted response, used when work was queued rather
// than completed.
func Accepted(c echo.Context, data any) error {
	return c.JSON(http.StatusAccepted, data)
}
