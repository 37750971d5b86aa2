package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes the health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// StatusResponse is the payload for operations that only report an outcome,
// like queueing a ticket email.
type StatusResponse struct {
	Status string `json:"status"`
}

// Queued writes a 202 for work accepted into a queue.
func Queued(c echo.Context) error {
	return Accepted(c, &StatusResponse{Status: "queued"})
}
