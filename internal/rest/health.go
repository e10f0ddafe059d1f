package rest

import (
	"net/http"
	"time"

	jsonres "beaconia/pkg/response"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, jsonres.Success(map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	}))
}
