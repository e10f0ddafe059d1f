package middleware

import (
	"errors"
	"net/http"

	"beaconia/pkg/logger"

	jsonres "beaconia/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error in the error envelope. Echo's own
// errors (unknown route, bad method) keep their status.
func ErrorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.Error("unhandled error", "path", c.Path(), "error", err)
			if !production {
				message = err.Error()
			}
		}

		if err := c.JSON(status, jsonres.Error(jsonres.CodeForStatus(status), message, nil)); err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
