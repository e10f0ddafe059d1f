package middleware

import (
	"strconv"
	"time"

	"beaconia/pkg/logger"
	"beaconia/pkg/metrics"
	"beaconia/pkg/trace"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware carries the request id into the request context so the
// services can log it, and records per-route request counts.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = res.Header().Get(echo.HeaderXRequestID)
			}
			if id == "" {
				id = uuid.NewString()
				res.Header().Set(echo.HeaderXRequestID, id)
			}
			c.SetRequest(req.WithContext(trace.WithID(req.Context(), id)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			metrics.HTTPRequests.WithLabelValues(c.Path(), strconv.Itoa(res.Status)).Inc()
			logger.Debug("request handled",
				"trace_id", id,
				"method", req.Method,
				"path", c.Path(),
				"status", res.Status,
				"latency", time.Since(start).String(),
			)
			return nil
		}
	}
}
