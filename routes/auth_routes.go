package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/middleware"
)

// RegisterAuthRoutes sets up login, logout and account routes
func RegisterAuthRoutes(api *echo.Group, d Dependencies) {
	auth := api.Group("/auth")

	auth.POST("/login", d.Auth.Login)
	auth.POST("/logout", d.Auth.Logout, d.RequireAuth)
	auth.GET("/me", d.Auth.Me, d.RequireAuth)
	auth.POST("/register", d.Auth.Register, d.RequireAuth, middleware.RequireAdmin())
}
