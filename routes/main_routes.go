package routes

import (
	"context"
	"net/http"
	"strings"

	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HSouheill/client_desk/controllers"
	"github.com/HSouheill/client_desk/middleware"
	"github.com/HSouheill/client_desk/websocket"
)

// Dependencies carries everything the route table needs.
type Dependencies struct {
	Auth    *controllers.AuthController
	Clients *controllers.ClientController
	Email   *controllers.EmailController

	// RequireAuth validates the session token.
	RequireAuth echo.MiddlewareFunc

	Hub      *websocket.Hub
	Upgrader *gws.Upgrader

	// Ping reports store health for /health. Nil means always healthy.
	Ping func(ctx context.Context) error

	// StaticDir, when set, serves the built frontend with index fallback.
	StaticDir string
}

// SetupRoutes configures all routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, d Dependencies) {
	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", healthHandler(d.Ping))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", middleware.RequireJSON())
	RegisterAuthRoutes(api, d)
	RegisterClientRoutes(api, d)
	RegisterEmailRoutes(api, d)
	RegisterWebSocketRoutes(api, d)

	if d.StaticDir != "" {
		RegisterStaticRoutes(e, d.StaticDir)
	}
}

func healthHandler(ping func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		database := "connected"
		status := http.StatusOK
		if ping != nil {
			if err := ping(c.Request().Context()); err != nil {
				database = "unreachable"
				status = http.StatusServiceUnavailable
			}
		}
		return c.JSON(status, map[string]string{
			"status":   http.StatusText(status),
			"database": database,
		})
	}
}

// RegisterStaticRoutes serves the single-page app from dir. Unknown non-API
// paths fall back to index.html so client-side routing works on refresh.
func RegisterStaticRoutes(e *echo.Echo, dir string) {
	e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
		Root:  dir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") || p == "/metrics" || p == "/health"
		},
	}))
}
