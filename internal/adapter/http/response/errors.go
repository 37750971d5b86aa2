package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 with field-level validation details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 with a single message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// NotFound writes a 404 with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// ProxyRejected writes a 502 when the ticket proxy declined the request.
func ProxyRejected(c echo.Context) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:    CodeProxyRejected,
		Message: MsgProxyRejected,
	})
}

// GatewayTimeout writes a 504 for timed-out or cancelled requests.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// InternalServerError writes a generic 500.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
