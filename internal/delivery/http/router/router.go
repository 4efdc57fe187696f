// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pickup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	CheckInHandler *handler.CheckInHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	checkInHandler *handler.CheckInHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		checkInHandler: params.CheckInHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	addressGroup := api.Group("/addresses")
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		// The match route must precede the parameterized routes so
		// "match" is never read as an address id.
		addressGroup.GET("/match", r.addressHandler.MatchAddress)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.PATCH("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeactivateAddress)
		addressGroup.GET("/:id/qr", r.addressHandler.GetPickupCardQR)
	}

	checkInGroup := api.Group("/checkins")
	{
		checkInGroup.GET("", r.checkInHandler.ListCheckIns)
		checkInGroup.POST("", r.checkInHandler.Admit)
		checkInGroup.GET("/stats", r.checkInHandler.DailyStats)
		checkInGroup.GET("/:id", r.checkInHandler.GetCheckIn)
		checkInGroup.PATCH("/:id/checkout", r.checkInHandler.CheckOut)
		checkInGroup.PATCH("/:id/cancel", r.checkInHandler.Cancel)
	}
}
