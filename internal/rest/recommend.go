package rest

import (
	"context"
	"net/http"
	"time"

	"beaconia/domain"
	"beaconia/internal/middleware"
	"beaconia/pkg/logger"
	"beaconia/pkg/metrics"

	jsonres "beaconia/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const defaultTimeout = 15 * time.Second

type RecommendService interface {
	Recommend(ctx context.Context, req domain.RecommendationRequest, userID string) (domain.RecommendResult, error)
}

type RecommendHandler struct {
	recommendService RecommendService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewRecommendHandler(recommendService RecommendService, timeout time.Duration) *RecommendHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RecommendHandler{
		recommendService: recommendService,
		validator:        newValidator(),
		timeout:          timeout,
	}
}

type RecommendRequest struct {
	Duration   int      `json:"duration" validate:"required,min=5,max=480"`
	Energy     string   `json:"energy" validate:"required,oneof=low medium high"`
	Location   string   `json:"location" validate:"required,oneof=home outdoor any"`
	Cost       string   `json:"cost" validate:"required,oneof=free low medium"`
	Social     string   `json:"social" validate:"required,oneof=solo friends both"`
	Mood       string   `json:"mood" validate:"omitempty,max=50"`
	ExcludeIDs []string `json:"excludeIds" validate:"omitempty,max=100,dive,required"`
}

func (r RecommendRequest) toDomain() domain.RecommendationRequest {
	return domain.RecommendationRequest{
		Duration:   r.Duration,
		Energy:     r.Energy,
		Location:   r.Location,
		Cost:       r.Cost,
		Social:     r.Social,
		Mood:       r.Mood,
		ExcludeIDs: r.ExcludeIDs,
	}
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Debug("Failed to bind recommend request", "error", err)
		return badRequest(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, "Validation failed", validationDetails(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.recommendService.Recommend(ctx, req.toDomain(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, jsonres.Success(result))
}
