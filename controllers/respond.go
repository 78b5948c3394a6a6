package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/logger"
	"github.com/HSouheill/client_desk/models"
	"github.com/HSouheill/client_desk/services"
)

const requestTimeout = 10 * time.Second

// requestContext bounds store and relay calls made for one request.
func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.Fail(http.StatusBadRequest, message))
}

// Client-facing errors by status. The reply carries the sentinel's own text,
// never the wrapping chain.
var (
	badRequestErrors = []error{
		services.ErrInvalidID,
		services.ErrInvalidStatus,
		services.ErrIncompleteMessage,
		services.ErrUnknownTemplate,
	}
	unauthorizedErrors = []error{services.ErrInvalidCredentials}
	notFoundErrors     = []error{services.ErrClientNotFound, services.ErrUserNotFound}
	conflictErrors     = []error{services.ErrInvalidTransition, services.ErrEmailTaken}
)

func matchSentinel(err error, candidates []error) (error, bool) {
	for _, sentinel := range candidates {
		if errors.Is(err, sentinel) {
			return sentinel, true
		}
	}
	return nil, false
}

// respondError maps service errors onto the response envelope.
func respondError(c echo.Context, err error) error {
	var (
		verr *services.ValidationError
		cerr *services.ConfigurationError
		terr *services.TransportError
	)

	if sentinel, ok := matchSentinel(err, badRequestErrors); ok {
		return badRequest(c, sentinel.Error())
	}
	if sentinel, ok := matchSentinel(err, unauthorizedErrors); ok {
		return c.JSON(http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, sentinel.Error()))
	}
	if sentinel, ok := matchSentinel(err, notFoundErrors); ok {
		return c.JSON(http.StatusNotFound, models.Fail(http.StatusNotFound, sentinel.Error()))
	}
	if sentinel, ok := matchSentinel(err, conflictErrors); ok {
		return c.JSON(http.StatusConflict, models.Fail(http.StatusConflict, sentinel.Error()))
	}

	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Errors:  verr.Fields,
		})
	case errors.As(err, &cerr):
		return c.JSON(http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, cerr.Error()))
	case errors.As(err, &terr):
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send email",
			Errors:  map[string]string{"error": terr.Err.Error()},
		})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, models.Fail(http.StatusGatewayTimeout, "Request timed out"))
	}

	logger.Component("http").Error().Err(err).
		Str("path", c.Request().URL.Path).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, "Internal server error"))
}
