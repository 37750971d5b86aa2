package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
)

// Setup registers the middleware chain in order: RequestID first so every
// log line carries the ID, then request logging, then panic recovery.
// Call before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
