package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/security"
)

// RequireJSON rejects POST, PUT and PATCH requests whose body is not JSON.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if c.Request().ContentLength != 0 && !security.ValidateContentType(c.Request().Header.Get(echo.HeaderContentType)) {
					return c.JSON(http.StatusUnsupportedMediaType,
						models.Fail(http.StatusUnsupportedMediaType, "Content-Type must be application/json"))
				}
			}
			return next(c)
		}
	}
}
