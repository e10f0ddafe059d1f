package rest

import (
	"context"
	"net/http"
	"time"

	"beaconia/domain"

	jsonres "beaconia/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ActivityService interface {
	GetAllActivities(ctx context.Context, filter domain.ActivityFilter) (domain.ActivityPage, error)
	GetActivityByID(ctx context.Context, id string) (domain.Activity, error)
}

type ActivityHandler struct {
	activityService ActivityService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewActivityHandler(activityService ActivityService, timeout time.Duration) *ActivityHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ActivityHandler{
		activityService: activityService,
		validator:       newValidator(),
		timeout:         timeout,
	}
}

type ActivityQuery struct {
	Duration int    `query:"duration" validate:"omitempty,min=1,max=480"`
	Energy   string `query:"energy" validate:"omitempty,oneof=low medium high"`
	Location string `query:"location" validate:"omitempty,oneof=home outdoor any"`
	Cost     string `query:"cost" validate:"omitempty,oneof=free low medium"`
	Social   string `query:"social" validate:"omitempty,oneof=solo friends both"`
	Mood     string `query:"mood" validate:"omitempty,max=50"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (h *ActivityHandler) GetAllActivities(c echo.Context) error {
	var q ActivityQuery
	if err := c.Bind(&q); err != nil {
		return badRequest(c, "Invalid query parameters", nil)
	}
	if err := h.validator.Struct(&q); err != nil {
		return badRequest(c, "Validation failed", validationDetails(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.activityService.GetAllActivities(ctx, domain.ActivityFilter{
		Duration: q.Duration,
		Energy:   q.Energy,
		Location: q.Location,
		Cost:     q.Cost,
		Social:   q.Social,
		Mood:     q.Mood,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, jsonres.Success(page))
}

func (h *ActivityHandler) GetActivityByID(c echo.Context) error {
	id := c.Param("id")
	if err := h.validator.Var(id, "required,uuid"); err != nil {
		return badRequest(c, "Invalid activity id", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	activity, err := h.activityService.GetActivityByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, jsonres.Success(activity))
}
