package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs each request on completion.
// Server errors log at error level, client errors at warn, the rest at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch {
			case res.Status >= 500:
				event = log.Error()
			case res.Status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Msg("HTTP request")

			// The error was already handled via c.Error.
			return nil
		}
	}
}
