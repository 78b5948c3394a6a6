package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// CORS allows the configured frontend origins to call the API with the
// session cookie.
func CORS(origins []string) echo.MiddlewareFunc {
	credentials := true
	for _, o := range origins {
		if o == "*" {
			// browsers refuse credentialed wildcard responses
			credentials = false
		}
	}

	return echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPatch,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			echo.HeaderXRequestedWith,
		},
		AllowCredentials: credentials,
		ExposeHeaders:    []string{echo.HeaderContentLength, echo.HeaderXRequestID},
		MaxAge:           86400,
	})
}
