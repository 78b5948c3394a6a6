package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
)

// ErrorHandler renders errors that escape the handlers in the standard
// response envelope. Unknown errors become a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
	} else {
		logger.Component("http").Error().Err(err).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, models.Fail(status, message))
	}
	if err != nil {
		logger.Component("http").Error().Err(err).Msg("failed to write error response")
	}
}
