package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/middleware"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/websocket"
)

// RegisterWebSocketRoutes exposes the live dashboard feed to admins
func RegisterWebSocketRoutes(api *echo.Group, d Dependencies) {
	api.GET("/ws", func(c echo.Context) error {
		user, err := middleware.CurrentUser(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, "Please provide valid credentials"))
		}
		return websocket.HandleWebSocket(c, d.Hub, d.Upgrader, user.ID)
	}, d.RequireAuth, middleware.RequireAdmin())
}
