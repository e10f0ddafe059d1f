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

type FeedbackService interface {
	Submit(ctx context.Context, userID string, input domain.FeedbackInput) error
}

type FeedbackHandler struct {
	feedbackService FeedbackService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewFeedbackHandler(feedbackService FeedbackService, timeout time.Duration) *FeedbackHandler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validator:       newValidator(),
		timeout:         timeout,
	}
}

type FeedbackRequest struct {
	DecisionID string  `json:"decisionId" validate:"required,uuid"`
	Feedback   string  `json:"feedback" validate:"required,oneof=up down retry"`
	Reason     *string `json:"reason" validate:"omitempty,max=500"`
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, "Validation failed", validationDetails(err))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.feedbackService.Submit(ctx, middleware.UserID(c), domain.FeedbackInput{
		DecisionID: req.DecisionID,
		Feedback:   req.Feedback,
		Reason:     req.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, jsonres.Success(map[string]bool{"ok": true}))
}
