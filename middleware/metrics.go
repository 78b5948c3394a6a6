package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/client_desk/telemetry"
)

// Metrics records request counts and latency per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			telemetry.HTTPInFlight.Inc()
			defer telemetry.HTTPInFlight.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			telemetry.HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
			telemetry.HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
