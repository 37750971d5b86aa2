package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
)

// Recover returns middleware that recovers from handler panics, logs them
// with a stack trace, and answers 500 so the server keeps serving.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					log.Error().
						Str("request_id", GetRequestID(c)).
						Str("panic", panicMsg).
						Str("stack", string(debug.Stack())).
						Msg("Panic recovered")

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]any{
							"code":    "internal_error",
							"message": "An unexpected error occurred",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
