package rest

import (
	"context"
	"net/http"
	"time"

	"beaconia/domain"
	"beaconia/internal/middleware"

	jsonres "beaconia/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HistoryService interface {
	List(ctx context.Context, userID string, page, limit int) (domain.DecisionPage, error)
}

type HistoryHandler struct {
	historyService HistoryService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewHistoryHandler(historyService HistoryService, timeout time.Duration) *HistoryHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HistoryHandler{
		historyService: historyService,
		validator:      newValidator(),
		timeout:        timeout,
	}
}

type HistoryQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (h *HistoryHandler) List(c echo.Context) error {
	var q HistoryQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "Invalid query parameters", nil)
	}
	if err := h.validator.Struct(&q); err != nil {
		return badRequest(c, "Validation failed", validationDetails(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.historyService.List(ctx, middleware.UserID(c), q.Page, q.Limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, jsonres.Success(page))
}
