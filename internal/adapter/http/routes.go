package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the fare service API routes.
func RegisterRoutes(e *echo.Echo, h *FareHandler) {
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	fares := api.Group("/fares")
	fares.POST("/search", h.SearchFares)

	tickets := api.Group("/tickets")
	tickets.POST("/email", h.SendTicketEmail)
	tickets.GET("/images/:pnr", h.TicketImages)

	agents := api.Group("/agents")
	agents.GET("/:id/profile", h.GetProfile)
	agents.GET("/:id/searches", h.RecentSearches)
}
