package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/middleware"
)

// RegisterClientRoutes sets up submission and review routes. Any signed-in
// account may submit; everything else is admin only.
func RegisterClientRoutes(api *echo.Group, d Dependencies) {
	clients := api.Group("/clients", d.RequireAuth)
	admin := middleware.RequireAdmin()

	clients.POST("", d.Clients.Create)
	clients.GET("", d.Clients.List, admin)
	clients.GET("/dashboard", d.Clients.Dashboard, admin)
	clients.GET("/:id", d.Clients.Get, admin)
	clients.PATCH("/:id/status", d.Clients.UpdateStatus, admin)
}
