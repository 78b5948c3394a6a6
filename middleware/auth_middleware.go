// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
)

// RequireRole checks if the authenticated account has one of the allowed roles
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ExtractRole(c)
			if role == "" {
				return c.JSON(http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, "Authentication failed: role not found"))
			}

			for _, r := range allowed {
				if role == r {
					return next(c)
				}
			}

			logger.Component("auth").Warn().
				Str("path", c.Request().URL.Path).
				Str("role", role).
				Strs("allowed", allowed).
				Msg("access denied")
			return c.JSON(http.StatusForbidden, models.Fail(http.StatusForbidden, "Access denied for your role"))
		}
	}
}

// RequireAdmin is RequireRole(models.RoleAdmin).
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
