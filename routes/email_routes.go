package routes

import "github.com/labstack/echo/v4"

// RegisterEmailRoutes sets up template listing and dispatch routes
func RegisterEmailRoutes(api *echo.Group, d Dependencies) {
	email := api.Group("/email", d.RequireAuth)

	email.GET("/templates", d.Email.Templates)
	email.POST("/send", d.Email.Send)
	email.POST("/send-template", d.Email.SendTemplate)
}
